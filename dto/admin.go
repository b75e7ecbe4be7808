package dto

type AdminRegisterRequest struct {
	Username         string `json:"username" binding:"required,min=3,max=30"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	Role             string `json:"role" binding:"required,oneof=hr_admin ngo_admin legal_aid_admin"`
	OrganizationName string `json:"organization_name" binding:"required,max=100"`
	OrganizationID   string `json:"organization_id" binding:"required,max=50"`
	OrganizationType string `json:"organization_type" binding:"required,oneof=corporation ngo legal_firm"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	TotpCode string `json:"totp_code"`
}

type TotpVerifyRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

type UpdateCaseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=submitted under_review resolved closed"`
}

type ForwardCaseRequest struct {
	AdminID     int      `json:"admin_id" binding:"required"`
	Permissions []string `json:"permissions" binding:"required,min=1"`
	ExpiresIn   int      `json:"expires_in"`
	Notes       string   `json:"notes" binding:"max=500"`
}

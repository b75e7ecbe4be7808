package dto

type CreateIncidentRequest struct {
	Title            string `json:"title" binding:"required,max=200"`
	Description      string `json:"description" binding:"required,max=5000"`
	Location         string `json:"location" binding:"max=500"`
	Witnesses        string `json:"witnesses" binding:"max=1000"`
	Severity         string `json:"severity" binding:"omitempty,oneof=low medium high critical"`
	Category         string `json:"category" binding:"omitempty,oneof=verbal_harassment physical_harassment sexual_harassment discrimination bullying retaliation other"`
	Destination      string `json:"destination" binding:"required,oneof=hr ngo legal_aid"`
	OrganizationName string `json:"organization_name" binding:"max=100"`
}

type UpdateIncidentRequest struct {
	Title       string `json:"title" binding:"omitempty,max=200"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Location    string `json:"location" binding:"omitempty,max=500"`
	Witnesses   string `json:"witnesses" binding:"omitempty,max=1000"`
	Severity    string `json:"severity" binding:"omitempty,oneof=low medium high critical"`
	Category    string `json:"category" binding:"omitempty,oneof=verbal_harassment physical_harassment sexual_harassment discrimination bullying retaliation other"`
}

package services

import (
	"safespace/model"

	"gorm.io/gorm"
)

func GetUserdata(db *gorm.DB, userId string) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetIncidentData(db *gorm.DB, incidentID string) (*model.Incident, error) {
	var incident model.Incident
	if err := db.Where("incident_id = ?", incidentID).First(&incident).Error; err != nil {
		return nil, err
	}
	return &incident, nil
}

func GetAdminData(db *gorm.DB, adminID string) (*model.Admin, error) {
	var admin model.Admin
	if err := db.Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

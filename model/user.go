// model/user.go
package model

import (
	"time"
)

type User struct {
	UserID         int        `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username       string     `gorm:"column:username;type:varchar(30);unique;not null"`
	HashedPassword string     `gorm:"column:hashed_password;type:varchar(255);not null"`
	Language       string     `gorm:"column:language;type:enum('english','hindi','marathi','tamil');default:'english';not null"`
	IsActive       string     `gorm:"column:is_active;type:enum('0','1');default:'1';not null"`
	LastLogin      *time.Time `gorm:"column:last_login"`
	CreateAt       time.Time  `gorm:"column:create_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

package dbmodels

import "recruitment-backend/models"

type Account struct {
	BaseModel
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255)"`
	FullName     string          `gorm:"type:varchar(255)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
}

package dbmodels

import "recruitment-backend/models"

type Position struct {
	BaseModel
	Title      string `gorm:"type:varchar(255)"`
	Department string `gorm:"type:varchar(255)"`
	Level      string `gorm:"type:varchar(100)"`
	SalaryFrom int
	SalaryTo   int
	Status     models.PositionStatus `gorm:"type:varchar(50)"`
}

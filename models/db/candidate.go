package dbmodels

import "recruitment-backend/models"

type Candidate struct {
	BaseModel
	PositionID   string                 `gorm:"type:varchar(36);index"`
	Position     *Position              `gorm:"foreignKey:PositionID"`
	Name         string                 `gorm:"type:varchar(255)"`
	Email        string                 `gorm:"type:varchar(255)"`
	Phone        string                 `gorm:"type:varchar(50)"`
	Source       models.CandidateSource `gorm:"type:varchar(50)"`
	CustomSource string                 `gorm:"type:varchar(255)"` // free text when Source is "Khác"
	Stage        models.Stage           `gorm:"type:varchar(50);index"`
	CVLink       string
	Notes        string
	CVFiles      []CVFile `gorm:"foreignKey:CandidateID"`
}

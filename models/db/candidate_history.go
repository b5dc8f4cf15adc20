package dbmodels

import "recruitment-backend/models"

type ActionType string

const (
	HistoryTypeCreate    ActionType = "create"
	HistoryTypeUpdate    ActionType = "update"
	HistoryTypeStageMove ActionType = "stage_move"
	HistoryTypeComment   ActionType = "comment"
)

type CandidateHistory struct {
	BaseModel
	CandidateID string       `gorm:"type:varchar(36);index"`
	PositionID  string       `gorm:"type:varchar(36);index"`
	ActionType  ActionType   `gorm:"type:varchar(50)"`
	FromStage   models.Stage `gorm:"type:varchar(50)"`
	ToStage     models.Stage `gorm:"type:varchar(50)"`
	UserName    string       `gorm:"type:varchar(255)"`
	Description string
}

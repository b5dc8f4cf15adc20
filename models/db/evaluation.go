package dbmodels

import "recruitment-backend/models"

// Evaluation is the probation evaluation of one notification (1:1,
// unique index on NotificationID). Saves replace the record wholesale.
type Evaluation struct {
	BaseModel
	NotificationID string        `gorm:"type:varchar(36);uniqueIndex"`
	Notification   *Notification `gorm:"foreignKey:NotificationID"`

	SelfEvaluation    string
	ManagerEvaluation string
	OverallResult     string `gorm:"type:varchar(255)"`
	Note              string

	Tasks []EvaluationTask `gorm:"foreignKey:EvaluationID"`
}

type EvaluationTask struct {
	BaseModel
	EvaluationID string `gorm:"type:varchar(36);index"`
	Task         string
	Details      string
	Results      string
	Completion   models.CompletionStatus `gorm:"type:varchar(100)"`
	Comments     string
	Notes        string
}

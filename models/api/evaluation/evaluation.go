package evaluationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

type TaskRow struct {
	Task       string                  `json:"task"`
	Details    string                  `json:"details"`
	Results    string                  `json:"results"`
	Completion models.CompletionStatus `json:"completion"`
	Comments   string                  `json:"comments"`
	Notes      string                  `json:"notes"`
}

// EvaluationData replaces the stored evaluation wholesale on every save.
type EvaluationData struct {
	Tasks             []TaskRow `json:"tasks"`
	SelfEvaluation    string    `json:"self_evaluation"`
	ManagerEvaluation string    `json:"manager_evaluation"`
	OverallResult     string    `json:"overall_result"`
	Note              string    `json:"note"`
}

func (e EvaluationData) Validate() error {
	if len(e.Tasks) == 0 {
		return errors.New("at least one task row is required")
	}
	for _, t := range e.Tasks {
		if t.Task == "" {
			return errors.New("task name is required")
		}
		if t.Completion != "" && !t.Completion.IsValid() {
			return errors.Errorf("unknown completion status: %s", t.Completion)
		}
	}
	return nil
}

type EvaluationView struct {
	ID             string `json:"id"`
	NotificationID string `json:"notification_id"`
	EvaluationData
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func EvaluationConvert(rec dbmodels.Evaluation) EvaluationView {
	tasks := make([]TaskRow, 0, len(rec.Tasks))
	for _, t := range rec.Tasks {
		tasks = append(tasks, TaskRow{
			Task:       t.Task,
			Details:    t.Details,
			Results:    t.Results,
			Completion: t.Completion,
			Comments:   t.Comments,
			Notes:      t.Notes,
		})
	}
	return EvaluationView{
		ID:             rec.ID,
		NotificationID: rec.NotificationID,
		EvaluationData: EvaluationData{
			Tasks:             tasks,
			SelfEvaluation:    rec.SelfEvaluation,
			ManagerEvaluation: rec.ManagerEvaluation,
			OverallResult:     rec.OverallResult,
			Note:              rec.Note,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

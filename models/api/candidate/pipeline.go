package candidateapimodels

import (
	"recruitment-backend/models"
)

// BoardColumn is one kanban column. Count always equals len(Candidates)
// of the unfiltered grouping for its stage.
type BoardColumn struct {
	Stage      models.StageInfo `json:"stage"`
	Count      int              `json:"count"`
	Candidates []CandidateView  `json:"candidates"`
}

type BoardView struct {
	PositionID string        `json:"position_id"`
	Columns    []BoardColumn `json:"columns"`
}

type HistoryView struct {
	ID          string `json:"id"`
	ActionType  string `json:"action_type"`
	FromStage   string `json:"from_stage,omitempty"`
	ToStage     string `json:"to_stage,omitempty"`
	UserName    string `json:"user_name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

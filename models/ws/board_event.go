package wsmodels

// BoardEvent tells board viewers that a position's pipeline changed and
// should be refetched. It carries no board state on purpose: clients
// always rebuild from a full list fetch.
type BoardEvent struct {
	PositionID  string `json:"position_id"`
	Event       string `json:"event"`
	CandidateID string `json:"candidate_id,omitempty"`
	Stage       string `json:"stage,omitempty"`
	Time        string `json:"time"`
}

const (
	EventStageMoved       = "stage_moved"
	EventCandidateCreated = "candidate_created"
	EventCandidateUpdated = "candidate_updated"
	EventCandidateDeleted = "candidate_deleted"
)

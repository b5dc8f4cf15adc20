package candidate

import (
	log "github.com/sirupsen/logrus"
	"recruitment-backend/models"
	candidateapimodels "recruitment-backend/models/api/candidate"
	dbmodels "recruitment-backend/models/db"
)

// BuildBoard groups one position's candidate list into the fixed stage
// columns. Grouping is always recomputed from a single fetched list, so
// a candidate can never appear in two columns. A row with a stage
// outside the fixed set (legacy data; new writes are rejected) lands in
// no column and is logged.
func BuildBoard(positionID string, list []dbmodels.Candidate) candidateapimodels.BoardView {
	stages := models.Stages()
	columns := make([]candidateapimodels.BoardColumn, 0, len(stages))
	grouped := make(map[models.Stage][]candidateapimodels.CandidateView, len(stages))
	for _, rec := range list {
		if !rec.Stage.IsValid() {
			log.WithField("candidate_id", rec.ID).
				WithField("stage", rec.Stage).
				Warn("candidate has unknown stage, excluded from board")
			continue
		}
		grouped[rec.Stage] = append(grouped[rec.Stage], candidateapimodels.CandidateConvert(rec))
	}
	for _, info := range stages {
		cards := grouped[info.Key]
		if cards == nil {
			cards = []candidateapimodels.CandidateView{}
		}
		columns = append(columns, candidateapimodels.BoardColumn{
			Stage:      info,
			Count:      len(cards),
			Candidates: cards,
		})
	}
	return candidateapimodels.BoardView{
		PositionID: positionID,
		Columns:    columns,
	}
}

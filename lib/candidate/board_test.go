package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

func TestBuildBoard(t *testing.T) {
	positionID := "pos-1"

	t.Run(`empty list renders all columns empty`, func(t *testing.T) {
		board := BuildBoard(positionID, nil)
		require.Equal(t, positionID, board.PositionID)
		require.Len(t, board.Columns, len(models.Stages()))
		for _, column := range board.Columns {
			require.Equal(t, 0, column.Count)
			require.NotNil(t, column.Candidates)
			require.Empty(t, column.Candidates)
		}
	})

	t.Run(`columns follow the fixed stage order`, func(t *testing.T) {
		board := BuildBoard(positionID, nil)
		for idx, info := range models.Stages() {
			require.Equal(t, info.Key, board.Columns[idx].Stage.Key)
			require.Equal(t, info.Label, board.Columns[idx].Stage.Label)
			require.Equal(t, idx+1, board.Columns[idx].Stage.Order)
		}
	})

	t.Run(`each candidate lands in exactly one column`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			{BaseModel: dbmodels.BaseModel{ID: "c-1"}, Stage: models.StageNew},
			{BaseModel: dbmodels.BaseModel{ID: "c-2"}, Stage: models.StageNew},
			{BaseModel: dbmodels.BaseModel{ID: "c-3"}, Stage: models.StageOffer},
		}
		board := BuildBoard(positionID, list)
		seen := map[string]int{}
		total := 0
		for _, column := range board.Columns {
			require.Equal(t, len(column.Candidates), column.Count)
			total += column.Count
			for _, card := range column.Candidates {
				seen[card.ID]++
			}
		}
		require.Equal(t, len(list), total)
		for id, count := range seen {
			require.Equal(t, 1, count, "candidate %s appears in more than one column", id)
		}
	})

	t.Run(`unknown stage row is excluded`, func(t *testing.T) {
		list := []dbmodels.Candidate{
			{BaseModel: dbmodels.BaseModel{ID: "c-1"}, Stage: models.StageHired},
			{BaseModel: dbmodels.BaseModel{ID: "c-legacy"}, Stage: models.Stage("screening")},
		}
		board := BuildBoard(positionID, list)
		total := 0
		for _, column := range board.Columns {
			total += column.Count
		}
		require.Equal(t, 1, total)
	})
}

package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbmodels "recruitment-backend/models/db"
)

func TestDiffCVSet(t *testing.T) {
	current := []dbmodels.CVFile{
		{BaseModel: dbmodels.BaseModel{ID: "file-1"}, FileName: "cv.pdf"},
		{BaseModel: dbmodels.BaseModel{ID: "file-2"}, FileName: "portfolio.pdf"},
	}

	t.Run(`unchanged set yields empty diff`, func(t *testing.T) {
		diff := DiffCVSet(current, []string{"file-1", "file-2"}, nil)
		require.True(t, diff.IsEmpty())
		require.Empty(t, diff.ToDelete)
		require.Empty(t, diff.ToUpload)
	})

	t.Run(`pure removal deletes only the dropped file`, func(t *testing.T) {
		diff := DiffCVSet(current, []string{"file-1"}, nil)
		require.Len(t, diff.ToDelete, 1)
		require.Equal(t, "file-2", diff.ToDelete[0].ID)
		require.Empty(t, diff.ToUpload)
	})

	t.Run(`pure addition uploads only the new file`, func(t *testing.T) {
		added := []NewCVFile{{FileName: "new.pdf", Size: 10}}
		diff := DiffCVSet(current, []string{"file-1", "file-2"}, added)
		require.Empty(t, diff.ToDelete)
		require.Len(t, diff.ToUpload, 1)
		require.Equal(t, "new.pdf", diff.ToUpload[0].FileName)
	})

	t.Run(`mixed edit produces independent operations`, func(t *testing.T) {
		added := []NewCVFile{{FileName: "new.pdf"}}
		diff := DiffCVSet(current, []string{"file-2"}, added)
		require.Len(t, diff.ToDelete, 1)
		require.Equal(t, "file-1", diff.ToDelete[0].ID)
		require.Len(t, diff.ToUpload, 1)
	})

	t.Run(`empty kept list deletes everything`, func(t *testing.T) {
		diff := DiffCVSet(current, nil, nil)
		require.Len(t, diff.ToDelete, 2)
	})

	t.Run(`unknown kept id is ignored`, func(t *testing.T) {
		diff := DiffCVSet(current, []string{"file-1", "file-2", "ghost"}, nil)
		require.True(t, diff.IsEmpty())
	})
}

package candidate

import (
	dbmodels "recruitment-backend/models/db"
)

// NewCVFile is a pending upload coming from the editor. It has no stable
// id yet; persisted attachments are referenced by id instead.
type NewCVFile struct {
	FileName    string
	ContentType string
	Size        int64
	Body        []byte
}

// CVDiff is the exact set of file operations a candidate save must
// perform. Deletes and uploads are independent, each one retryable on
// its own; there is no all-or-nothing replacement of the attachment set.
type CVDiff struct {
	ToDelete []dbmodels.CVFile
	ToUpload []NewCVFile
}

func (d CVDiff) IsEmpty() bool {
	return len(d.ToDelete) == 0 && len(d.ToUpload) == 0
}

// DiffCVSet reconciles the persisted attachment set against the editor
// state. keptIDs are the persisted attachment ids still present in the
// editor; a persisted attachment missing from keptIDs is deleted. added
// holds the files newly attached in the editor. An unchanged set yields
// an empty diff and the save touches no files.
func DiffCVSet(current []dbmodels.CVFile, keptIDs []string, added []NewCVFile) CVDiff {
	kept := make(map[string]struct{}, len(keptIDs))
	for _, id := range keptIDs {
		kept[id] = struct{}{}
	}
	diff := CVDiff{}
	for _, rec := range current {
		if _, ok := kept[rec.ID]; !ok {
			diff.ToDelete = append(diff.ToDelete, rec)
		}
	}
	diff.ToUpload = added
	return diff
}

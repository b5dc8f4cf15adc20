package candidateapimodels

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

const (
	MaxCVFileSize = 5 * 1024 * 1024
	MaxCVFiles    = 5
)

var allowedCVExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// CandidateData is the multipart form payload of candidate create/update.
// KeptCVIDs lists the already persisted attachments the editor kept;
// persisted attachments missing from it are deleted on save.
type CandidateData struct {
	Name         string                 `form:"name"`
	Email        string                 `form:"email"`
	Phone        string                 `form:"phone"`
	Source       models.CandidateSource `form:"source"`
	CustomSource string                 `form:"custom_source"`
	CVLink       string                 `form:"cv_link"`
	Notes        string                 `form:"notes"`
	KeptCVIDs    []string               `form:"kept_cv_ids"`
}

// Validate checks non-file fields. newFileCount is the number of CV file
// parts attached to the request; on create a candidate needs at least one
// CV source (a file or an external link) before anything is stored.
func (c CandidateData) Validate(isCreate bool, newFileCount int) error {
	if c.Name == "" {
		return errors.New("candidate name is required")
	}
	if c.Email == "" && c.Phone == "" {
		return errors.New("at least one contact (email or phone) is required")
	}
	if c.Source == "" {
		return errors.New("candidate source is required")
	}
	if !c.Source.IsValid() {
		return errors.Errorf("unknown candidate source: %s", c.Source)
	}
	if c.Source == models.SourceOther && c.CustomSource == "" {
		return errors.New("custom source text is required for source \"Khác\"")
	}
	if isCreate && newFileCount == 0 && c.CVLink == "" {
		return errors.New("a CV file or an external CV link is required")
	}
	return nil
}

// CheckCVFile validates one file at intake. Violating files never enter
// the submitted set.
func CheckCVFile(fileName string, size int64) error {
	if size > MaxCVFileSize {
		return errors.Errorf("file %s exceeds the 5MB limit", fileName)
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := allowedCVExtensions[ext]; !ok {
		return errors.Errorf("file type %q is not accepted (pdf, doc, docx, jpg, jpeg, png)", ext)
	}
	return nil
}

type CVFileView struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

type CandidateView struct {
	ID           string                 `json:"id"`
	PositionID   string                 `json:"position_id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone"`
	Source       models.CandidateSource `json:"source"`
	CustomSource string                 `json:"custom_source,omitempty"`
	Stage        models.Stage           `json:"stage"`
	CVLink       string                 `json:"cv_link,omitempty"`
	Notes        string                 `json:"notes,omitempty"`
	CVFiles      []CVFileView           `json:"cv_files"`
	CreatedAt    time.Time              `json:"created_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	files := make([]CVFileView, 0, len(rec.CVFiles))
	for _, f := range rec.CVFiles {
		files = append(files, CVFileView{
			ID:          f.ID,
			FileName:    f.FileName,
			ContentType: f.ContentType,
			Size:        f.Size,
			URL:         "/api/v1/candidate/" + rec.ID + "/cv/" + f.ID,
		})
	}
	return CandidateView{
		ID:           rec.ID,
		PositionID:   rec.PositionID,
		Name:         rec.Name,
		Email:        rec.Email,
		Phone:        rec.Phone,
		Source:       rec.Source,
		CustomSource: rec.CustomSource,
		Stage:        rec.Stage,
		CVLink:       rec.CVLink,
		Notes:        rec.Notes,
		CVFiles:      files,
		CreatedAt:    rec.CreatedAt,
	}
}

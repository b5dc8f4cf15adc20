package candidate

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruitment-backend/db"
	cvstore "recruitment-backend/lib/candidate/cv-store"
	historystore "recruitment-backend/lib/candidate/history-store"
	candidatestore "recruitment-backend/lib/candidate/store"
	xlsexport "recruitment-backend/lib/export/xls"
	filestorage "recruitment-backend/lib/file-storage"
	notificationstore "recruitment-backend/lib/notification/store"
	positionstore "recruitment-backend/lib/position/store"
	"recruitment-backend/lib/utils/helpers"
	boardhub "recruitment-backend/lib/ws/board-hub"
	"recruitment-backend/models"
	candidateapimodels "recruitment-backend/models/api/candidate"
	dbmodels "recruitment-backend/models/db"
	wsmodels "recruitment-backend/models/ws"
)

type Provider interface {
	Create(ctx context.Context, positionID string, data candidateapimodels.CandidateData, files []NewCVFile) (id string, err error)
	Update(ctx context.Context, id string, data candidateapimodels.CandidateData, files []NewCVFile) error
	Delete(ctx context.Context, id string) (hMsg string, err error)
	GetByID(id string) (candidateapimodels.CandidateView, error)
	Board(positionID, search string) (candidateapimodels.BoardView, error)
	MoveStage(id string, target models.Stage, userName string) error
	History(id string) ([]candidateapimodels.HistoryView, error)
	GetCV(ctx context.Context, candidateID, fileID string) (fileName, contentType string, body []byte, err error)
	ExportXLSX(positionID, search string) (fileName string, file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:             candidatestore.NewInstance(db.DB),
		cvStore:           cvstore.NewInstance(db.DB),
		historyStore:      historystore.NewInstance(db.DB),
		positionStore:     positionstore.NewInstance(db.DB),
		notificationStore: notificationstore.NewInstance(db.DB),
		storage:           filestorage.Instance,
	}
}

type impl struct {
	store             candidatestore.Provider
	cvStore           cvstore.Provider
	historyStore      historystore.Provider
	positionStore     positionstore.Provider
	notificationStore notificationstore.Provider
	storage           filestorage.Provider
}

func (i impl) Create(ctx context.Context, positionID string, data candidateapimodels.CandidateData, files []NewCVFile) (string, error) {
	position, err := i.positionStore.GetByID(positionID)
	if err != nil {
		return "", err
	}
	if position == nil {
		return "", errors.New("position not found")
	}
	rec := dbmodels.Candidate{
		PositionID:   positionID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		Source:       data.Source,
		CustomSource: data.CustomSource,
		Stage:        models.StageNew,
		CVLink:       data.CVLink,
		Notes:        data.Notes,
	}
	if rec.Source != models.SourceOther {
		rec.CustomSource = ""
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	if err = i.uploadFiles(ctx, id, files); err != nil {
		return "", err
	}
	i.saveHistory(dbmodels.CandidateHistory{
		CandidateID: id,
		PositionID:  positionID,
		ActionType:  dbmodels.HistoryTypeCreate,
		Description: "candidate added to pipeline",
	})
	i.broadcast(wsmodels.BoardEvent{
		PositionID:  positionID,
		Event:       wsmodels.EventCandidateCreated,
		CandidateID: id,
	})
	return id, nil
}

func (i impl) Update(ctx context.Context, id string, data candidateapimodels.CandidateData, files []NewCVFile) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("candidate not found")
	}

	diff := DiffCVSet(rec.CVFiles, data.KeptCVIDs, files)
	remaining := len(rec.CVFiles) - len(diff.ToDelete) + len(diff.ToUpload)
	if remaining > candidateapimodels.MaxCVFiles {
		return errors.Errorf("a candidate can hold at most %d CV files", candidateapimodels.MaxCVFiles)
	}
	for _, dropped := range diff.ToDelete {
		if err = i.cvStore.Delete(dropped.ID); err != nil {
			return err
		}
		if err = i.storage.Delete(ctx, dropped.ObjectKey); err != nil {
			return err
		}
	}
	if err = i.uploadFiles(ctx, id, diff.ToUpload); err != nil {
		return err
	}

	updMap := map[string]interface{}{
		"name":          data.Name,
		"email":         data.Email,
		"phone":         data.Phone,
		"source":        data.Source,
		"custom_source": data.CustomSource,
		"cv_link":       data.CVLink,
		"notes":         data.Notes,
	}
	if data.Source != models.SourceOther {
		updMap["custom_source"] = ""
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	i.saveHistory(dbmodels.CandidateHistory{
		CandidateID: id,
		PositionID:  rec.PositionID,
		ActionType:  dbmodels.HistoryTypeUpdate,
		Description: "candidate record updated",
	})
	i.broadcast(wsmodels.BoardEvent{
		PositionID:  rec.PositionID,
		Event:       wsmodels.EventCandidateUpdated,
		CandidateID: id,
	})
	return nil
}

// Delete removes the candidate. Rows go first in one transaction, so a
// refused delete loses nothing; stored objects are cleaned up only once
// the rows are gone.
func (i impl) Delete(ctx context.Context, id string) (string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("candidate not found")
	}
	notification, err := i.notificationStore.GetByCandidateID(id)
	if err != nil {
		return "", err
	}
	if notification != nil {
		return "Ứng viên đã có thông báo nhận việc, không thể xóa", nil
	}
	if err = i.store.Delete(id); err != nil {
		return "", err
	}
	for _, file := range rec.CVFiles {
		if err = i.storage.Delete(ctx, file.ObjectKey); err != nil {
			log.WithError(err).
				WithField("object_key", file.ObjectKey).
				Error("cv object cleanup failed")
		}
	}
	i.broadcast(wsmodels.BoardEvent{
		PositionID:  rec.PositionID,
		Event:       wsmodels.EventCandidateDeleted,
		CandidateID: id,
	})
	return "", nil
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, errors.New("candidate not found")
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) Board(positionID, search string) (candidateapimodels.BoardView, error) {
	position, err := i.positionStore.GetByID(positionID)
	if err != nil {
		return candidateapimodels.BoardView{}, err
	}
	if position == nil {
		return candidateapimodels.BoardView{}, errors.New("position not found")
	}
	list, err := i.store.ListByPosition(positionID, search)
	if err != nil {
		return candidateapimodels.BoardView{}, err
	}
	return BuildBoard(positionID, list), nil
}

// MoveStage sets the candidate's stage. Any stage may move to any other
// stage; moving to the current stage is a no-op.
func (i impl) MoveStage(id string, target models.Stage, userName string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("candidate not found")
	}
	if rec.Stage == target {
		return nil
	}
	err = i.store.Update(id, map[string]interface{}{"stage": target})
	if err != nil {
		return err
	}
	i.saveHistory(dbmodels.CandidateHistory{
		CandidateID: id,
		PositionID:  rec.PositionID,
		ActionType:  dbmodels.HistoryTypeStageMove,
		FromStage:   rec.Stage,
		ToStage:     target,
		UserName:    userName,
	})
	i.broadcast(wsmodels.BoardEvent{
		PositionID:  rec.PositionID,
		Event:       wsmodels.EventStageMoved,
		CandidateID: id,
		Stage:       string(target),
	})
	return nil
}

func (i impl) History(id string) ([]candidateapimodels.HistoryView, error) {
	list, err := i.historyStore.ListByCandidate(id)
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.HistoryView{
			ID:          rec.ID,
			ActionType:  string(rec.ActionType),
			FromStage:   string(rec.FromStage),
			ToStage:     string(rec.ToStage),
			UserName:    rec.UserName,
			Description: rec.Description,
			CreatedAt:   rec.CreatedAt.Format("02.01.2006 15:04:05"),
		})
	}
	return result, nil
}

func (i impl) GetCV(ctx context.Context, candidateID, fileID string) (string, string, []byte, error) {
	rec, err := i.cvStore.GetByID(candidateID, fileID)
	if err != nil {
		return "", "", nil, err
	}
	if rec == nil {
		return "", "", nil, errors.New("cv file not found")
	}
	body, err := i.storage.Get(ctx, rec.ObjectKey)
	if err != nil {
		return "", "", nil, err
	}
	return rec.FileName, rec.ContentType, body, nil
}

// ExportXLSX renders the position's candidate list as a spreadsheet.
func (i impl) ExportXLSX(positionID, search string) (string, *bytes.Buffer, error) {
	position, err := i.positionStore.GetByID(positionID)
	if err != nil {
		return "", nil, err
	}
	if position == nil {
		return "", nil, errors.New("position not found")
	}
	list, err := i.store.ListByPosition(positionID, search)
	if err != nil {
		return "", nil, err
	}
	file, err := xlsexport.Instance.ExportCandidateList(position.Title, list)
	if err != nil {
		return "", nil, err
	}
	return "candidates-" + positionID + ".xlsx", file, nil
}

// uploadFiles stores each new attachment independently: object first,
// metadata row second, so a metadata row never points at a missing
// object.
func (i impl) uploadFiles(ctx context.Context, candidateID string, files []NewCVFile) error {
	for _, file := range files {
		if helpers.IsContextDone(ctx) {
			return errors.New("request cancelled")
		}
		objectKey, err := i.storage.Upload(ctx, "cv/"+candidateID, file.FileName, file.ContentType,
			bytes.NewReader(file.Body), file.Size)
		if err != nil {
			return err
		}
		_, err = i.cvStore.Save(dbmodels.CVFile{
			CandidateID: candidateID,
			FileName:    file.FileName,
			ObjectKey:   objectKey,
			ContentType: file.ContentType,
			Size:        file.Size,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (i impl) saveHistory(rec dbmodels.CandidateHistory) {
	if _, err := i.historyStore.Create(rec); err != nil {
		log.WithError(err).
			WithField("candidate_id", rec.CandidateID).
			Error("candidate history save failed")
	}
}

func (i impl) broadcast(event wsmodels.BoardEvent) {
	if boardhub.Instance == nil {
		return
	}
	boardhub.Instance.Broadcast(event)
}

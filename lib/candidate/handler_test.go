package candidate

import (
	"context"
	"io"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	boardhub "recruitment-backend/lib/ws/board-hub"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	candidateapimodels "recruitment-backend/models/api/candidate"
	positionapimodels "recruitment-backend/models/api/position"
	dbmodels "recruitment-backend/models/db"
	wsmodels "recruitment-backend/models/ws"
)

type fakeCandidateStore struct {
	rec       *dbmodels.Candidate
	updates   []map[string]interface{}
	deleted   []string
	deleteErr error
}

func (f *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) { return "cand-1", nil }

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error {
	f.updates = append(f.updates, updMap)
	return nil
}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) {
	if f.rec != nil && f.rec.ID == id {
		return f.rec, nil
	}
	return nil, nil
}

func (f *fakeCandidateStore) ListByPosition(positionID, search string) ([]dbmodels.Candidate, error) {
	return nil, nil
}

func (f *fakeCandidateStore) Delete(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCVStore struct {
	saved   []dbmodels.CVFile
	deleted []string
}

func (f *fakeCVStore) Save(rec dbmodels.CVFile) (string, error) {
	f.saved = append(f.saved, rec)
	return "cv-new", nil
}

func (f *fakeCVStore) GetByID(candidateID, id string) (*dbmodels.CVFile, error) { return nil, nil }

func (f *fakeCVStore) ListByCandidate(candidateID string) ([]dbmodels.CVFile, error) {
	return nil, nil
}

func (f *fakeCVStore) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeHistoryStore struct {
	recs []dbmodels.CandidateHistory
}

func (f *fakeHistoryStore) Create(rec dbmodels.CandidateHistory) (string, error) {
	f.recs = append(f.recs, rec)
	return "hist-1", nil
}

func (f *fakeHistoryStore) ListByCandidate(candidateID string) ([]dbmodels.CandidateHistory, error) {
	return f.recs, nil
}

type fakePositionStore struct {
	rec *dbmodels.Position
}

func (f *fakePositionStore) Create(rec dbmodels.Position) (string, error) { return "", nil }

func (f *fakePositionStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakePositionStore) GetByID(id string) (*dbmodels.Position, error) {
	if f.rec != nil && f.rec.ID == id {
		return f.rec, nil
	}
	return nil, nil
}

func (f *fakePositionStore) List(filter positionapimodels.PositionFilter) ([]dbmodels.Position, error) {
	return nil, nil
}

func (f *fakePositionStore) ListCount(filter positionapimodels.PositionFilter) (int64, error) {
	return 0, nil
}

func (f *fakePositionStore) CandidateCount(id string) (int64, error) { return 0, nil }

func (f *fakePositionStore) Delete(id string) error { return nil }

type fakeDossierStore struct {
	rec *dbmodels.Notification
}

func (f *fakeDossierStore) Create(rec dbmodels.Notification) (string, error) { return "", nil }

func (f *fakeDossierStore) Replace(rec dbmodels.Notification) error { return nil }

func (f *fakeDossierStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeDossierStore) GetByID(id string) (*dbmodels.Notification, error) { return nil, nil }

func (f *fakeDossierStore) GetByCandidateID(candidateID string) (*dbmodels.Notification, error) {
	if f.rec != nil && f.rec.CandidateID == candidateID {
		return f.rec, nil
	}
	return nil, nil
}

func (f *fakeDossierStore) List(search string, pagination apimodels.Pagination) ([]dbmodels.Notification, error) {
	return nil, nil
}

func (f *fakeDossierStore) ListCount(search string) (int64, error) { return 0, nil }

func (f *fakeDossierStore) EligibleCandidates() ([]dbmodels.Candidate, error) { return nil, nil }

func (f *fakeDossierStore) AddPhoto(rec dbmodels.NotificationPhoto) (string, error) { return "", nil }

func (f *fakeDossierStore) GetPhoto(notificationID, photoID string) (*dbmodels.NotificationPhoto, error) {
	return nil, nil
}

func (f *fakeDossierStore) Delete(id string) error { return nil }

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) Upload(ctx context.Context, prefix, fileName, contentType string, body io.Reader, size int64) (string, error) {
	key := prefix + "/" + fileName
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeStorage) Get(ctx context.Context, objectKey string) ([]byte, error) { return nil, nil }

func (f *fakeStorage) Delete(ctx context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) EnsureBucket(ctx context.Context) error { return nil }

type fakeHub struct {
	events []wsmodels.BoardEvent
}

func (f *fakeHub) Subscribe(positionID, connID string, conn *websocket.Conn) {}

func (f *fakeHub) Unsubscribe(positionID, connID string) {}

func (f *fakeHub) Broadcast(event wsmodels.BoardEvent) {
	f.events = append(f.events, event)
}

type candidateFixture struct {
	handler      impl
	store        *fakeCandidateStore
	cvStore      *fakeCVStore
	historyStore *fakeHistoryStore
	dossierStore *fakeDossierStore
	storage      *fakeStorage
	hub          *fakeHub
}

func newCandidateFixture(t *testing.T, rec *dbmodels.Candidate) candidateFixture {
	t.Helper()
	fx := candidateFixture{
		store:        &fakeCandidateStore{rec: rec},
		cvStore:      &fakeCVStore{},
		historyStore: &fakeHistoryStore{},
		dossierStore: &fakeDossierStore{},
		storage:      &fakeStorage{},
		hub:          &fakeHub{},
	}
	fx.handler = impl{
		store:             fx.store,
		cvStore:           fx.cvStore,
		historyStore:      fx.historyStore,
		positionStore:     &fakePositionStore{rec: &dbmodels.Position{BaseModel: dbmodels.BaseModel{ID: "pos-1"}, Title: "Backend Developer"}},
		notificationStore: fx.dossierStore,
		storage:           fx.storage,
	}
	previous := boardhub.Instance
	boardhub.Instance = fx.hub
	t.Cleanup(func() { boardhub.Instance = previous })
	return fx
}

func storedCandidate(fileCount int) *dbmodels.Candidate {
	rec := &dbmodels.Candidate{
		BaseModel:  dbmodels.BaseModel{ID: "cand-1"},
		PositionID: "pos-1",
		Name:       "Nguyễn Văn A",
		Email:      "a@example.com",
		Source:     models.SourceEmail,
		Stage:      models.StageOffer,
	}
	for n := 0; n < fileCount; n++ {
		rec.CVFiles = append(rec.CVFiles, dbmodels.CVFile{
			BaseModel: dbmodels.BaseModel{ID: "cv-" + string(rune('a'+n))},
			ObjectKey: "cv/cand-1/" + string(rune('a'+n)) + ".pdf",
		})
	}
	return rec
}

func keptIDs(rec *dbmodels.Candidate) []string {
	ids := make([]string, 0, len(rec.CVFiles))
	for _, file := range rec.CVFiles {
		ids = append(ids, file.ID)
	}
	return ids
}

func newUploads(count int) []NewCVFile {
	files := make([]NewCVFile, 0, count)
	for n := 0; n < count; n++ {
		files = append(files, NewCVFile{
			FileName:    "new-" + string(rune('a'+n)) + ".pdf",
			ContentType: "application/pdf",
			Size:        128,
			Body:        []byte("%PDF-"),
		})
	}
	return files
}

func TestCandidateDelete(t *testing.T) {
	t.Run(`candidate with a dossier is refused before anything is touched`, func(t *testing.T) {
		fx := newCandidateFixture(t, storedCandidate(2))
		fx.dossierStore.rec = &dbmodels.Notification{
			BaseModel:   dbmodels.BaseModel{ID: "notif-1"},
			CandidateID: "cand-1",
		}
		hMsg, err := fx.handler.Delete(context.Background(), "cand-1")
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
		require.Empty(t, fx.store.deleted)
		require.Empty(t, fx.storage.deleted)
		require.Empty(t, fx.hub.events)
	})

	t.Run(`failed row delete leaves every stored object in place`, func(t *testing.T) {
		fx := newCandidateFixture(t, storedCandidate(2))
		fx.store.deleteErr = errors.New("update or delete violates foreign key constraint")
		_, err := fx.handler.Delete(context.Background(), "cand-1")
		require.Error(t, err)
		require.Empty(t, fx.storage.deleted)
		require.Empty(t, fx.hub.events)
	})

	t.Run(`successful delete removes objects after the rows`, func(t *testing.T) {
		fx := newCandidateFixture(t, storedCandidate(2))
		hMsg, err := fx.handler.Delete(context.Background(), "cand-1")
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, []string{"cand-1"}, fx.store.deleted)
		require.Len(t, fx.storage.deleted, 2)
		require.Len(t, fx.hub.events, 1)
		require.Equal(t, wsmodels.EventCandidateDeleted, fx.hub.events[0].Event)
	})
}

func TestCandidateUpdateCVCeiling(t *testing.T) {
	data := func(rec *dbmodels.Candidate) candidateapimodels.CandidateData {
		return candidateapimodels.CandidateData{
			Name:      rec.Name,
			Email:     rec.Email,
			Source:    rec.Source,
			KeptCVIDs: keptIDs(rec),
		}
	}

	t.Run(`kept plus new files above the ceiling is rejected`, func(t *testing.T) {
		rec := storedCandidate(4)
		fx := newCandidateFixture(t, rec)
		err := fx.handler.Update(context.Background(), "cand-1", data(rec), newUploads(2))
		require.Error(t, err)
		require.Empty(t, fx.storage.uploaded)
		require.Empty(t, fx.storage.deleted)
		require.Empty(t, fx.cvStore.deleted)
		require.Empty(t, fx.store.updates)
	})

	t.Run(`exactly the ceiling passes`, func(t *testing.T) {
		rec := storedCandidate(4)
		fx := newCandidateFixture(t, rec)
		err := fx.handler.Update(context.Background(), "cand-1", data(rec), newUploads(1))
		require.NoError(t, err)
		require.Len(t, fx.storage.uploaded, 1)
		require.Len(t, fx.cvStore.saved, 1)
		require.Len(t, fx.store.updates, 1)
	})

	t.Run(`dropping files makes room for new ones`, func(t *testing.T) {
		rec := storedCandidate(5)
		fx := newCandidateFixture(t, rec)
		payload := data(rec)
		payload.KeptCVIDs = payload.KeptCVIDs[:3]
		err := fx.handler.Update(context.Background(), "cand-1", payload, newUploads(2))
		require.NoError(t, err)
		require.Len(t, fx.cvStore.deleted, 2)
		require.Len(t, fx.storage.deleted, 2)
		require.Len(t, fx.storage.uploaded, 2)
	})
}

func TestMoveStageNoOp(t *testing.T) {
	t.Run(`moving to the current stage changes nothing`, func(t *testing.T) {
		fx := newCandidateFixture(t, storedCandidate(0))
		err := fx.handler.MoveStage("cand-1", models.StageOffer, "hr@example.com")
		require.NoError(t, err)
		require.Empty(t, fx.store.updates)
		require.Empty(t, fx.historyStore.recs)
		require.Empty(t, fx.hub.events)
	})

	t.Run(`a real move updates, records history and broadcasts`, func(t *testing.T) {
		fx := newCandidateFixture(t, storedCandidate(0))
		err := fx.handler.MoveStage("cand-1", models.StageHired, "hr@example.com")
		require.NoError(t, err)
		require.Len(t, fx.store.updates, 1)
		require.Equal(t, models.StageHired, fx.store.updates[0]["stage"])
		require.Len(t, fx.historyStore.recs, 1)
		require.Equal(t, models.StageOffer, fx.historyStore.recs[0].FromStage)
		require.Equal(t, models.StageHired, fx.historyStore.recs[0].ToStage)
		require.Len(t, fx.hub.events, 1)
		require.Equal(t, wsmodels.EventStageMoved, fx.hub.events[0].Event)
	})
}

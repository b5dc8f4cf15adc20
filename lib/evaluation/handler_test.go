package evaluation

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"recruitment-backend/lib/smtp"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	evaluationapimodels "recruitment-backend/models/api/evaluation"
	dbmodels "recruitment-backend/models/db"
)

type fakeEvaluationStore struct {
	inserted []dbmodels.Evaluation
	replaced []dbmodels.Evaluation
	existing *dbmodels.Evaluation
}

func (f *fakeEvaluationStore) Insert(rec dbmodels.Evaluation) (string, error) {
	if f.existing != nil {
		return "", &pq.Error{Code: "23505"}
	}
	rec.ID = "eval-1"
	f.inserted = append(f.inserted, rec)
	f.existing = &rec
	return rec.ID, nil
}

func (f *fakeEvaluationStore) ReplaceByNotificationID(notificationID string, rec dbmodels.Evaluation) error {
	rec.NotificationID = notificationID
	f.replaced = append(f.replaced, rec)
	f.existing = &rec
	return nil
}

func (f *fakeEvaluationStore) GetByNotificationID(notificationID string) (*dbmodels.Evaluation, error) {
	if f.existing == nil || f.existing.NotificationID != notificationID {
		return nil, nil
	}
	return f.existing, nil
}

type fakeNotificationStore struct {
	rec *dbmodels.Notification
}

func (f *fakeNotificationStore) Create(rec dbmodels.Notification) (string, error) { return "", nil }

func (f *fakeNotificationStore) Replace(rec dbmodels.Notification) error { return nil }

func (f *fakeNotificationStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeNotificationStore) GetByID(id string) (*dbmodels.Notification, error) {
	if f.rec != nil && f.rec.ID == id {
		return f.rec, nil
	}
	return nil, nil
}
func (f *fakeNotificationStore) GetByCandidateID(candidateID string) (*dbmodels.Notification, error) {
	if f.rec != nil && f.rec.CandidateID == candidateID {
		return f.rec, nil
	}
	return nil, nil
}
func (f *fakeNotificationStore) List(search string, pagination apimodels.Pagination) ([]dbmodels.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationStore) ListCount(search string) (int64, error) { return 0, nil }

func (f *fakeNotificationStore) EligibleCandidates() ([]dbmodels.Candidate, error) { return nil, nil }

func (f *fakeNotificationStore) AddPhoto(rec dbmodels.NotificationPhoto) (string, error) {
	return "", nil
}
func (f *fakeNotificationStore) GetPhoto(notificationID, photoID string) (*dbmodels.NotificationPhoto, error) {
	return nil, nil
}
func (f *fakeNotificationStore) Delete(id string) error { return nil }

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailer) SendEMailWithAttachment(to, subject, message string, attachment smtp.Attachment) error {
	f.sent = append(f.sent, to)
	return nil
}

func newTestHandler() (impl, *fakeEvaluationStore, *fakeMailer) {
	store := &fakeEvaluationStore{}
	mailer := &fakeMailer{}
	handler := impl{
		store: store,
		notificationStore: &fakeNotificationStore{rec: &dbmodels.Notification{
			BaseModel: dbmodels.BaseModel{ID: "notif-1"},
			FullName:  "Trần Thị B",
			Email:     "b@example.com",
		}},
		mailer: mailer,
	}
	return handler, store, mailer
}

func evaluationPayload() evaluationapimodels.EvaluationData {
	return evaluationapimodels.EvaluationData{
		Tasks: []evaluationapimodels.TaskRow{
			{Task: "Làm quen quy trình", Completion: models.CompletionDone},
		},
		SelfEvaluation: "ok",
		OverallResult:  "Đạt",
	}
}

func TestEvaluationSave(t *testing.T) {
	t.Run(`first save inserts and emails exactly once`, func(t *testing.T) {
		handler, store, mailer := newTestHandler()
		created, err := handler.Save("notif-1", evaluationPayload())
		require.NoError(t, err)
		require.True(t, created)
		require.Len(t, store.inserted, 1)
		require.Empty(t, store.replaced)
		require.Equal(t, []string{"b@example.com"}, mailer.sent)
	})

	t.Run(`second save replaces without a second email`, func(t *testing.T) {
		handler, store, mailer := newTestHandler()
		_, err := handler.Save("notif-1", evaluationPayload())
		require.NoError(t, err)

		updated := evaluationPayload()
		updated.OverallResult = "Không đạt"
		created, err := handler.Save("notif-1", updated)
		require.NoError(t, err)
		require.False(t, created)
		require.Len(t, store.inserted, 1)
		require.Len(t, store.replaced, 1)
		require.Equal(t, "Không đạt", store.replaced[0].OverallResult)
		require.Len(t, mailer.sent, 1)
	})

	t.Run(`unknown notification is rejected`, func(t *testing.T) {
		handler, store, mailer := newTestHandler()
		_, err := handler.Save("notif-missing", evaluationPayload())
		require.Error(t, err)
		require.Empty(t, store.inserted)
		require.Empty(t, mailer.sent)
	})

	t.Run(`get returns nil while no evaluation exists`, func(t *testing.T) {
		handler, _, _ := newTestHandler()
		view, err := handler.GetByNotificationID("notif-1")
		require.NoError(t, err)
		require.Nil(t, view)

		_, err = handler.Save("notif-1", evaluationPayload())
		require.NoError(t, err)
		view, err = handler.GetByNotificationID("notif-1")
		require.NoError(t, err)
		require.NotNil(t, view)
		require.Equal(t, "Đạt", view.OverallResult)
	})
}

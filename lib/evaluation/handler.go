package evaluation

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruitment-backend/db"
	evaluationstore "recruitment-backend/lib/evaluation/store"
	notificationstore "recruitment-backend/lib/notification/store"
	"recruitment-backend/lib/smtp"
	"recruitment-backend/lib/utils/helpers"
	evaluationapimodels "recruitment-backend/models/api/evaluation"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	// Save stores the evaluation for a notification, replacing any
	// previous one. Created reports whether this call inserted the first
	// evaluation; only that call emails the candidate.
	Save(notificationID string, data evaluationapimodels.EvaluationData) (created bool, err error)
	GetByNotificationID(notificationID string) (*evaluationapimodels.EvaluationView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:             evaluationstore.NewInstance(db.DB),
		notificationStore: notificationstore.NewInstance(db.DB),
		mailer:            smtp.Instance,
	}
}

type impl struct {
	store             evaluationstore.Provider
	notificationStore notificationstore.Provider
	mailer            smtp.Provider
}

func (i impl) Save(notificationID string, data evaluationapimodels.EvaluationData) (bool, error) {
	notification, err := i.notificationStore.GetByID(notificationID)
	if err != nil {
		return false, err
	}
	if notification == nil {
		return false, errors.New("notification not found")
	}
	rec := toDBModel(notificationID, data)
	_, err = i.store.Insert(rec)
	if err == nil {
		i.sendCompletionMail(*notification)
		return true, nil
	}
	// A second save races the unique index on notification_id instead of
	// a read-then-write check, so two concurrent first saves cannot both
	// insert and both email.
	if !helpers.IsUniqueViolation(err) {
		return false, err
	}
	return false, i.store.ReplaceByNotificationID(notificationID, rec)
}

func (i impl) GetByNotificationID(notificationID string) (*evaluationapimodels.EvaluationView, error) {
	rec, err := i.store.GetByNotificationID(notificationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := evaluationapimodels.EvaluationConvert(*rec)
	return &view, nil
}

// sendCompletionMail is best effort: a mail failure does not roll back
// the stored evaluation.
func (i impl) sendCompletionMail(notification dbmodels.Notification) {
	if notification.Email == "" {
		log.WithField("notification_id", notification.ID).
			Warn("evaluation mail skipped, notification has no email")
		return
	}
	err := i.mailer.SendEMail(notification.Email,
		"Kết quả đánh giá thử việc - "+notification.FullName,
		"Chào "+notification.FullName+",\n\nĐánh giá kết quả thử việc của bạn đã được hoàn thành. Vui lòng liên hệ Phòng Nhân sự để biết thêm chi tiết.\n\nPhòng Nhân sự")
	if err != nil {
		log.WithError(err).
			WithField("notification_id", notification.ID).
			Error("evaluation mail failed")
	}
}

func toDBModel(notificationID string, data evaluationapimodels.EvaluationData) dbmodels.Evaluation {
	rec := dbmodels.Evaluation{
		NotificationID:    notificationID,
		SelfEvaluation:    data.SelfEvaluation,
		ManagerEvaluation: data.ManagerEvaluation,
		OverallResult:     data.OverallResult,
		Note:              data.Note,
	}
	for _, t := range data.Tasks {
		rec.Tasks = append(rec.Tasks, dbmodels.EvaluationTask{
			Task:       t.Task,
			Details:    t.Details,
			Results:    t.Results,
			Completion: t.Completion,
			Comments:   t.Comments,
			Notes:      t.Notes,
		})
	}
	return rec
}

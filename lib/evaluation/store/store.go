package evaluationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	// Insert creates a new evaluation row. A unique-constraint violation
	// on notification_id means one already exists; the caller decides
	// whether to fall back to ReplaceByNotificationID.
	Insert(rec dbmodels.Evaluation) (id string, err error)
	ReplaceByNotificationID(notificationID string, rec dbmodels.Evaluation) error
	GetByNotificationID(notificationID string) (*dbmodels.Evaluation, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Insert(rec dbmodels.Evaluation) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// ReplaceByNotificationID rewrites the existing evaluation wholesale:
// scalar fields updated in place, task rows deleted and recreated.
func (i impl) ReplaceByNotificationID(notificationID string, rec dbmodels.Evaluation) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		existing := dbmodels.Evaluation{}
		err := tx.
			Where("notification_id = ?", notificationID).
			First(&existing).
			Error
		if err != nil {
			return err
		}
		updMap := map[string]interface{}{
			"self_evaluation":    rec.SelfEvaluation,
			"manager_evaluation": rec.ManagerEvaluation,
			"overall_result":     rec.OverallResult,
			"note":               rec.Note,
		}
		err = tx.
			Model(&dbmodels.Evaluation{}).
			Where("id = ?", existing.ID).
			Updates(updMap).
			Error
		if err != nil {
			return err
		}
		if err = tx.Where("evaluation_id = ?", existing.ID).Delete(&dbmodels.EvaluationTask{}).Error; err != nil {
			return err
		}
		for idx := range rec.Tasks {
			rec.Tasks[idx].EvaluationID = existing.ID
		}
		if len(rec.Tasks) > 0 {
			if err = tx.Create(&rec.Tasks).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (i impl) GetByNotificationID(notificationID string) (*dbmodels.Evaluation, error) {
	rec := dbmodels.Evaluation{}
	err := i.db.
		Model(&dbmodels.Evaluation{}).
		Where("notification_id = ?", notificationID).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

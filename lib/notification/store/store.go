package notificationstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	Replace(rec dbmodels.Notification) error
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Notification, error)
	GetByCandidateID(candidateID string) (*dbmodels.Notification, error)
	List(search string, pagination apimodels.Pagination) (list []dbmodels.Notification, err error)
	ListCount(search string) (count int64, err error)
	EligibleCandidates() (list []dbmodels.Candidate, err error)
	AddPhoto(rec dbmodels.NotificationPhoto) (id string, err error)
	GetPhoto(notificationID, photoID string) (*dbmodels.NotificationPhoto, error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Replace rewrites the dossier and its sub-collections wholesale.
func (i impl) Replace(rec dbmodels.Notification) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", rec.ID).Delete(&dbmodels.TrainingCourse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("notification_id = ?", rec.ID).Delete(&dbmodels.PreparationTask{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&rec).Error
	})
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("notification not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{}
	err := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
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

func (i impl) GetByCandidateID(candidateID string) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{}
	err := i.db.
		Model(&dbmodels.Notification{}).
		Where("candidate_id = ?", candidateID).
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

func (i impl) List(search string, pagination apimodels.Pagination) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.Model(&dbmodels.Notification{})
	i.addFilter(tx, search)
	page, limit := pagination.GetPage()
	err = tx.
		Preload(clause.Associations).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(search string) (count int64, err error) {
	tx := i.db.Model(&dbmodels.Notification{})
	i.addFilter(tx, search)
	err = tx.Count(&count).Error
	return count, err
}

// EligibleCandidates lists candidates in the offer or hired stage with
// no notification yet.
func (i impl) EligibleCandidates() (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Joins("left join notifications as n on n.candidate_id = candidates.id").
		Where("n.id is null").
		Where("candidates.stage in ?", []models.Stage{models.StageOffer, models.StageHired}).
		Preload("Position").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) AddPhoto(rec dbmodels.NotificationPhoto) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetPhoto(notificationID, photoID string) (*dbmodels.NotificationPhoto, error) {
	rec := dbmodels.NotificationPhoto{}
	err := i.db.
		Model(&dbmodels.NotificationPhoto{}).
		Where("id = ?", photoID).
		Where("notification_id = ?", notificationID).
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

// Delete removes the dossier with its sub-collections and the evaluation
// hanging off it.
func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&dbmodels.TrainingCourse{},
			&dbmodels.PreparationTask{},
			&dbmodels.NotificationPhoto{},
		} {
			if err := tx.Where("notification_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		evaluation := dbmodels.Evaluation{}
		err := tx.Where("notification_id = ?", id).First(&evaluation).Error
		if err == nil {
			if err = tx.Where("evaluation_id = ?", evaluation.ID).Delete(&dbmodels.EvaluationTask{}).Error; err != nil {
				return err
			}
			if err = tx.Delete(&evaluation).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Delete(&dbmodels.Notification{BaseModel: dbmodels.BaseModel{ID: id}}).Error
	})
}

func (i impl) addFilter(tx *gorm.DB, search string) {
	if search != "" {
		searchValue := "%" + strings.ToLower(search) + "%"
		tx.Where("LOWER(full_name) like ? or LOWER(email) like ? or phone like ?", searchValue, searchValue, searchValue)
	}
}

package cvstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.CVFile) (id string, err error)
	GetByID(candidateID, id string) (*dbmodels.CVFile, error)
	ListByCandidate(candidateID string) (list []dbmodels.CVFile, err error)
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

func (i impl) Save(rec dbmodels.CVFile) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(candidateID, id string) (*dbmodels.CVFile, error) {
	rec := dbmodels.CVFile{}
	err := i.db.
		Model(&dbmodels.CVFile{}).
		Where("id = ?", id).
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

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.CVFile, err error) {
	err = i.db.
		Model(&dbmodels.CVFile{}).
		Where("candidate_id = ?", candidateID).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.CVFile{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}

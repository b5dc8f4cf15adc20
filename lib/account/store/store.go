package accountstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Account) (id string, err error)
	GetByEmail(email string) (*dbmodels.Account, error)
	GetByID(id string) (*dbmodels.Account, error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Account) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByEmail(email string) (*dbmodels.Account, error) {
	rec := dbmodels.Account{}
	err := i.db.
		Model(&dbmodels.Account{}).
		Where("email = ?", email).
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

func (i impl) GetByID(id string) (*dbmodels.Account, error) {
	rec := dbmodels.Account{}
	err := i.db.
		Model(&dbmodels.Account{}).
		Where("id = ?", id).
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

func (i impl) Count() (count int64, err error) {
	err = i.db.Model(&dbmodels.Account{}).Count(&count).Error
	return count, err
}

package positionstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	positionapimodels "recruitment-backend/models/api/position"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Position) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Position, error)
	List(filter positionapimodels.PositionFilter) (list []dbmodels.Position, err error)
	ListCount(filter positionapimodels.PositionFilter) (count int64, err error)
	CandidateCount(id string) (count int64, err error)
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

func (i impl) Create(rec dbmodels.Position) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Position{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Position, error) {
	rec := dbmodels.Position{}
	err := i.db.
		Model(&dbmodels.Position{}).
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

func (i impl) List(filter positionapimodels.PositionFilter) (list []dbmodels.Position, err error) {
	list = []dbmodels.Position{}
	tx := i.db.Model(&dbmodels.Position{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	err = tx.
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

func (i impl) ListCount(filter positionapimodels.PositionFilter) (count int64, err error) {
	tx := i.db.Model(&dbmodels.Position{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	return count, err
}

func (i impl) CandidateCount(id string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Where("position_id = ?", id).
		Count(&count).
		Error
	return count, err
}

func (i impl) Delete(id string) error {
	return i.db.
		Delete(&dbmodels.Position{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}

func (i impl) addFilter(tx *gorm.DB, filter positionapimodels.PositionFilter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(title) like ? or LOWER(department) like ?", searchValue, searchValue)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
}

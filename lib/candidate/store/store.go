package candidatestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	ListByPosition(positionID, search string) ([]dbmodels.Candidate, error)
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

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Omit(clause.Associations).
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
		Model(&dbmodels.Candidate{}).
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

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
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

// ListByPosition returns the full candidate list of one position. The
// search filter narrows the set before the board is grouped; it never
// touches stored stage membership.
func (i impl) ListByPosition(positionID, search string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(dbmodels.Candidate{}).
		Where("position_id = ?", positionID)
	if search != "" {
		searchValue := "%" + strings.ToLower(search) + "%"
		tx.Where("LOWER(name) like ? or LOWER(email) like ? or phone like ?", searchValue, searchValue, searchValue)
	}
	err = tx.Preload(clause.Associations).
		Order("created_at asc").
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

// Delete removes the candidate with its CV metadata and audit trail in
// one transaction. A failure leaves every row in place; stored objects
// are the caller's to remove once the rows are gone.
func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", id).Delete(&dbmodels.CVFile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("candidate_id = ?", id).Delete(&dbmodels.CandidateHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: id}}).Error
	})
}

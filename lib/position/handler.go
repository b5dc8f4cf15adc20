package position

import (
	"github.com/pkg/errors"
	"recruitment-backend/db"
	positionstore "recruitment-backend/lib/position/store"
	"recruitment-backend/models"
	positionapimodels "recruitment-backend/models/api/position"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	Create(data positionapimodels.PositionData) (id string, err error)
	Update(id string, data positionapimodels.PositionData) error
	GetByID(id string) (positionapimodels.PositionView, error)
	List(filter positionapimodels.PositionFilter) (list []positionapimodels.PositionView, rowCount int64, err error)
	Delete(id string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: positionstore.NewInstance(db.DB),
	}
}

type impl struct {
	store positionstore.Provider
}

func (i impl) Create(data positionapimodels.PositionData) (string, error) {
	status := data.Status
	if status == "" {
		status = models.PositionStatusDraft
	}
	rec := dbmodels.Position{
		Title:      data.Title,
		Department: data.Department,
		Level:      data.Level,
		SalaryFrom: data.SalaryFrom,
		SalaryTo:   data.SalaryTo,
		Status:     status,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data positionapimodels.PositionData) error {
	updMap := map[string]interface{}{
		"title":       data.Title,
		"department":  data.Department,
		"level":       data.Level,
		"salary_from": data.SalaryFrom,
		"salary_to":   data.SalaryTo,
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (positionapimodels.PositionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return positionapimodels.PositionView{}, err
	}
	if rec == nil {
		return positionapimodels.PositionView{}, errors.New("position not found")
	}
	return positionapimodels.PositionConvert(*rec), nil
}

func (i impl) List(filter positionapimodels.PositionFilter) ([]positionapimodels.PositionView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]positionapimodels.PositionView, 0, len(list))
	for _, rec := range list {
		result = append(result, positionapimodels.PositionConvert(rec))
	}
	return result, rowCount, nil
}

// Delete refuses to remove a position that still has candidates in its
// pipeline.
func (i impl) Delete(id string) (string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("position not found")
	}
	count, err := i.store.CandidateCount(id)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "position still has candidates in its pipeline", nil
	}
	return "", i.store.Delete(id)
}

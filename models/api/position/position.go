package positionapimodels

import (
	"time"

	"github.com/pkg/errors"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
)

type PositionData struct {
	Title      string                `json:"title"`       // position title
	Department string                `json:"department"`  // owning department
	Level      string                `json:"level"`       // seniority level
	SalaryFrom int                   `json:"salary_from"` // salary range lower bound
	SalaryTo   int                   `json:"salary_to"`   // salary range upper bound
	Status     models.PositionStatus `json:"status"`      // "Còn tuyển" / "Nhập" / "Tạm dừng"
}

func (p PositionData) Validate() error {
	if p.Title == "" {
		return errors.New("position title is required")
	}
	if p.Department == "" {
		return errors.New("department is required")
	}
	if p.Status != "" && !p.Status.IsValid() {
		return errors.Errorf("unknown position status: %s", p.Status)
	}
	if p.SalaryTo > 0 && p.SalaryFrom > p.SalaryTo {
		return errors.New("salary range lower bound exceeds upper bound")
	}
	return nil
}

type PositionView struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	Department string                `json:"department"`
	Level      string                `json:"level"`
	SalaryFrom int                   `json:"salary_from"`
	SalaryTo   int                   `json:"salary_to"`
	Status     models.PositionStatus `json:"status"`
	CreatedAt  time.Time             `json:"created_at"`
}

type PositionFilter struct {
	apimodels.Pagination
	Search string                `json:"search"` // substring over title/department
	Status models.PositionStatus `json:"status"` // optional status filter
}

func PositionConvert(rec dbmodels.Position) PositionView {
	return PositionView{
		ID:         rec.ID,
		Title:      rec.Title,
		Department: rec.Department,
		Level:      rec.Level,
		SalaryFrom: rec.SalaryFrom,
		SalaryTo:   rec.SalaryTo,
		Status:     rec.Status,
		CreatedAt:  rec.CreatedAt,
	}
}

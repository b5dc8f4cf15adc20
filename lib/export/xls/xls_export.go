package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
)

type Provider interface {
	ExportCandidateList(positionTitle string, list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Họ tên", "Liên hệ", "Vị trí tuyển dụng", "Nguồn", "Giai đoạn", "Link CV", "Số file CV", "Ghi chú", "Ngày tạo"}

func (i impl) ExportCandidateList(positionTitle string, list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	w := sheetWriter{f: f, sheet: "Sheet1"}
	if err := w.headerRow(candidateHeaders); err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	if len(list) != 0 {
		if err := writeCandidateRows(w, positionTitle, list); err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	f.SetSheetName(w.sheet, "Ứng viên")
	return f.WriteToBuffer()
}

func writeCandidateRows(w sheetWriter, positionTitle string, list []dbmodels.Candidate) error {
	if err := w.dataStyle(len(candidateHeaders), len(list)); err != nil {
		return err
	}
	row := 1
	for _, item := range list {
		row++
		// "Họ tên"
		col := 1
		if err := w.cell(col, row, item.Name); err != nil {
			return err
		}

		// "Liên hệ"
		col++
		if err := w.cell(col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return err
		}

		// "Vị trí tuyển dụng"
		col++
		if err := w.cell(col, row, positionTitle); err != nil {
			return err
		}

		// "Nguồn"
		col++
		source := string(item.Source)
		if item.Source == models.SourceOther && item.CustomSource != "" {
			source = item.CustomSource
		}
		if err := w.cell(col, row, source); err != nil {
			return err
		}

		// "Giai đoạn"
		col++
		if err := w.cell(col, row, item.Stage.Label()); err != nil {
			return err
		}

		// "Link CV"
		col++
		if err := w.cell(col, row, item.CVLink); err != nil {
			return err
		}

		// "Số file CV"
		col++
		if err := w.cell(col, row, len(item.CVFiles)); err != nil {
			return err
		}

		// "Ghi chú"
		col++
		if err := w.cell(col, row, item.Notes); err != nil {
			return err
		}

		// "Ngày tạo"
		col++
		if !item.CreatedAt.IsZero() {
			if err := w.cell(col, row, item.CreatedAt.Format("02/01/2006")); err != nil {
				return err
			}
		}
	}
	return nil
}

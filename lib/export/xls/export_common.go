package xlsexport

import "github.com/xuri/excelize/v2"

const exportColWidth = 25

// sheetWriter wraps one worksheet with the coordinate and style plumbing
// the candidate export needs.
type sheetWriter struct {
	f     *excelize.File
	sheet string
}

func (w sheetWriter) cell(col, row int, value interface{}) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellValue(w.sheet, name, value)
}

func (w sheetWriter) styleRange(colFrom, rowFrom, colTo, rowTo int, style *excelize.Style) error {
	styleID, err := w.f.NewStyle(style)
	if err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, first, last, styleID)
}

// headerRow writes the bold first line and sizes every column.
func (w sheetWriter) headerRow(headers []string) error {
	err := w.styleRange(1, 1, len(headers), 1, &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: "Times New Roman", Size: 11},
	})
	if err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err = w.f.SetColWidth(w.sheet, "A", lastCol, exportColWidth); err != nil {
		return err
	}
	for idx, value := range headers {
		if err = w.cell(idx+1, 1, value); err != nil {
			return err
		}
	}
	return nil
}

// dataStyle left-aligns the block of dataRows rows under the header.
func (w sheetWriter) dataStyle(cols, dataRows int) error {
	return w.styleRange(1, 2, cols, dataRows+1, &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Family: "Times New Roman", Size: 11},
	})
}

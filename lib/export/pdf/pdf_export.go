package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	notificationapimodels "recruitment-backend/models/api/notification"
)

const (
	fontDir  = "static/font"
	fontName = "DejaVu"
	dateFmt  = "02/01/2006"
)

// GenerateDossier renders the onboarding notification as an A4 PDF.
// The DejaVu fonts under static/font are deployment assets; without
// them the export fails with a clear error and nothing else suffers.
func GenerateDossier(view notificationapimodels.NotificationView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateDossier panic recover: %v", r)
		}
	}()
	for _, file := range []string{"DejaVuSans.ttf", "DejaVuSans-Bold.ttf"} {
		if _, statErr := os.Stat(filepath.Join(fontDir, file)); statErr != nil {
			return nil, errors.Wrap(statErr, "dossier fonts are not installed")
		}
	}
	pdf := fpdf.New("P", "mm", "A4", fontDir+"/")
	pdf.AddPage()
	pdf.AddUTF8Font(fontName, "", "DejaVuSans.ttf")
	pdf.AddUTF8Font(fontName, "B", "DejaVuSans-Bold.ttf")
	pdf.SetFont(fontName, "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "THÔNG BÁO NHẬN VIỆC", "", 1, "C", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, "Ngày lập: "+view.CreatedAt.Format(dateFmt), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, "Thông tin cá nhân")
	writeField(pdf, "Họ và tên", view.FullName)
	writeField(pdf, "Giới tính", view.Gender)
	writeField(pdf, "Ngày sinh", formatDate(view.BirthDate))
	writeField(pdf, "Nơi sinh", view.BirthPlace)
	writeField(pdf, "Số CCCD", view.IDNumber)

	writeSection(pdf, "Liên hệ")
	writeField(pdf, "Điện thoại", view.Phone)
	writeField(pdf, "Email", view.Email)
	writeField(pdf, "Hộ khẩu thường trú", view.PermanentAddress)
	writeField(pdf, "Chỗ ở hiện tại", view.CurrentAddress)

	writeSection(pdf, "Học vấn")
	writeField(pdf, "Trình độ", view.EducationLevel)
	writeField(pdf, "Trường", view.School)
	writeField(pdf, "Chuyên ngành", view.Major)
	if len(view.TrainingCourses) > 0 {
		writeCourseTable(pdf, view.TrainingCourses)
	}

	writeSection(pdf, "Tài khoản ngân hàng")
	writeField(pdf, "Số tài khoản", view.BankAccount)
	writeField(pdf, "Ngân hàng", view.BankName)

	writeSection(pdf, "Hồ sơ đã nộp")
	writeField(pdf, "CCCD công chứng", formatCheck(view.HasIDCard))
	writeField(pdf, "Bằng cấp", formatCheck(view.HasDegree))
	writeField(pdf, "Giấy khám sức khỏe", formatCheck(view.HasHealthCheck))
	writeField(pdf, "Ảnh thẻ", formatCheck(view.HasPhoto))
	writeField(pdf, "Sổ tạm trú", formatCheck(view.HasResidence))

	writeSection(pdf, "Thông tin nhận việc")
	writeField(pdf, "Ngày nhận việc", formatDate(view.StartDate))
	writeField(pdf, "Bộ phận", view.Department)
	writeField(pdf, "Chức danh", view.JobTitle)
	if len(view.PreparationTasks) > 0 {
		writeTaskTable(pdf, view.PreparationTasks)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont(fontName, "B", 10)
	pdf.CellFormat(55, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.MultiCell(0, 6, value, "", "L", false)
}

func writeCourseTable(pdf *fpdf.Fpdf, courses []notificationapimodels.TrainingCourse) {
	pdf.Ln(2)
	pdf.SetFont(fontName, "B", 10)
	pdf.CellFormat(90, 7, "Khóa đào tạo", "1", 0, "C", false, 0, "")
	pdf.CellFormat(65, 7, "Đơn vị cấp", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Năm", "1", 1, "C", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, c := range courses {
		year := ""
		if c.Year > 0 {
			year = fmt.Sprintf("%d", c.Year)
		}
		pdf.CellFormat(90, 7, c.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(65, 7, c.IssuedBy, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, year, "1", 1, "C", false, 0, "")
	}
}

func writeTaskTable(pdf *fpdf.Fpdf, tasks []notificationapimodels.PreparationTask) {
	pdf.Ln(2)
	pdf.SetFont(fontName, "B", 10)
	pdf.CellFormat(120, 7, "Nội dung chuẩn bị", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 7, "Bộ phận phụ trách", "1", 1, "C", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	for _, t := range tasks {
		pdf.CellFormat(120, 7, t.Content, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, t.Department, "1", 1, "L", false, 0, "")
	}
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(dateFmt)
}

func formatCheck(value bool) string {
	if value {
		return "Đã nộp"
	}
	return "Chưa nộp"
}

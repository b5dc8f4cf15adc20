package candidateapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"recruitment-backend/models"
)

func TestCandidateDataValidate(t *testing.T) {
	valid := CandidateData{
		Name:   "Nguyễn Văn A",
		Email:  "a@example.com",
		Source: models.SourceFacebook,
		CVLink: "https://example.com/cv",
	}

	t.Run(`valid create passes`, func(t *testing.T) {
		require.NoError(t, valid.Validate(true, 0))
	})

	t.Run(`name is required`, func(t *testing.T) {
		data := valid
		data.Name = ""
		require.Error(t, data.Validate(true, 0))
	})

	t.Run(`at least one contact is required`, func(t *testing.T) {
		data := valid
		data.Email = ""
		data.Phone = ""
		require.Error(t, data.Validate(true, 0))

		data.Phone = "0900000000"
		require.NoError(t, data.Validate(true, 0))
	})

	t.Run(`unknown source is rejected`, func(t *testing.T) {
		data := valid
		data.Source = models.CandidateSource("LinkedIn")
		require.Error(t, data.Validate(true, 0))
	})

	t.Run(`source "Khác" needs custom text`, func(t *testing.T) {
		data := valid
		data.Source = models.SourceOther
		require.Error(t, data.Validate(true, 0))

		data.CustomSource = "Giới thiệu nội bộ"
		require.NoError(t, data.Validate(true, 0))
	})

	t.Run(`create without any CV source is rejected`, func(t *testing.T) {
		data := valid
		data.CVLink = ""
		require.Error(t, data.Validate(true, 0))
		require.NoError(t, data.Validate(true, 1))
		// update does not re-require a CV source
		require.NoError(t, data.Validate(false, 0))
	})
}

func TestCheckCVFile(t *testing.T) {
	t.Run(`accepted types pass`, func(t *testing.T) {
		for _, name := range []string{"cv.pdf", "cv.doc", "cv.docx", "scan.jpg", "scan.jpeg", "scan.PNG"} {
			require.NoError(t, CheckCVFile(name, 1024))
		}
	})

	t.Run(`oversized file is rejected`, func(t *testing.T) {
		require.Error(t, CheckCVFile("cv.pdf", MaxCVFileSize+1))
		require.NoError(t, CheckCVFile("cv.pdf", MaxCVFileSize))
	})

	t.Run(`unsupported extension is rejected`, func(t *testing.T) {
		for _, name := range []string{"cv.exe", "cv.zip", "cv", "cv.pdf.sh"} {
			require.Error(t, CheckCVFile(name, 1024))
		}
	})
}

package candidate

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
	candidateapimodels "recruitment-backend/models/api/candidate"
)

// CollectCVUploads validates and reads the `cv` file parts of a
// multipart request. A file violating the size or type constraints
// rejects the whole request before any storage call is made.
func CollectCVUploads(form *multipart.Form) ([]NewCVFile, error) {
	if form == nil {
		return nil, nil
	}
	headers := form.File["cv"]
	if len(headers) == 0 {
		return nil, nil
	}
	if len(headers) > candidateapimodels.MaxCVFiles {
		return nil, errors.Errorf("at most %d CV files per candidate", candidateapimodels.MaxCVFiles)
	}
	files := make([]NewCVFile, 0, len(headers))
	for _, header := range headers {
		if err := candidateapimodels.CheckCVFile(header.Filename, header.Size); err != nil {
			return nil, err
		}
		body, err := readPart(header)
		if err != nil {
			return nil, errors.Wrapf(err, "read of %s failed", header.Filename)
		}
		contentType, err := sniffContentType(header.Filename, body)
		if err != nil {
			return nil, err
		}
		files = append(files, NewCVFile{
			FileName:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Body:        body,
		})
	}
	return files, nil
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// sniffContentType checks the magic bytes of binary formats against the
// claimed extension so a renamed executable cannot pass as a CV.
func sniffContentType(fileName string, body []byte) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	kind, err := filetype.Match(body)
	if err != nil {
		return "", errors.Wrapf(err, "type detection of %s failed", fileName)
	}
	switch ext {
	case "pdf", "jpg", "jpeg", "png":
		detected := kind.Extension
		if detected == "jpg" {
			detected = "jpeg"
		}
		claimed := ext
		if claimed == "jpg" {
			claimed = "jpeg"
		}
		if detected != claimed {
			return "", errors.Errorf("content of %s does not match its extension", fileName)
		}
		return kind.MIME.Value, nil
	case "doc":
		return "application/msword", nil
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	}
	return "application/octet-stream", nil
}

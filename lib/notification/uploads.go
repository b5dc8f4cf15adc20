package notification

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const maxPhotoSize = 5 * 1024 * 1024

var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// CollectPhotos reads the `personal_photo` and `id_card_photos` file
// parts of a multipart request. Both parts are optional.
func CollectPhotos(form *multipart.Form) (personalPhoto *PhotoUpload, idCardPhotos []PhotoUpload, err error) {
	if form == nil {
		return nil, nil, nil
	}
	if headers := form.File["personal_photo"]; len(headers) > 0 {
		photo, err := readPhoto(headers[0])
		if err != nil {
			return nil, nil, err
		}
		personalPhoto = &photo
	}
	for _, header := range form.File["id_card_photos"] {
		photo, err := readPhoto(header)
		if err != nil {
			return nil, nil, err
		}
		idCardPhotos = append(idCardPhotos, photo)
	}
	return personalPhoto, idCardPhotos, nil
}

func readPhoto(header *multipart.FileHeader) (PhotoUpload, error) {
	if header.Size > maxPhotoSize {
		return PhotoUpload{}, errors.Errorf("photo %s exceeds the 5MB limit", header.Filename)
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := photoContentTypes[ext]
	if !ok {
		return PhotoUpload{}, errors.Errorf("photo type %q is not accepted (jpg, jpeg, png)", ext)
	}
	f, err := header.Open()
	if err != nil {
		return PhotoUpload{}, errors.Wrapf(err, "open of %s failed", header.Filename)
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		return PhotoUpload{}, errors.Wrapf(err, "read of %s failed", header.Filename)
	}
	return PhotoUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        body,
	}, nil
}

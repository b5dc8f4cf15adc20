package notification

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"recruitment-backend/db"
	candidatestore "recruitment-backend/lib/candidate/store"
	pdfexport "recruitment-backend/lib/export/pdf"
	filestorage "recruitment-backend/lib/file-storage"
	notificationstore "recruitment-backend/lib/notification/store"
	"recruitment-backend/lib/smtp"
	"recruitment-backend/lib/utils/helpers"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	notificationapimodels "recruitment-backend/models/api/notification"
	dbmodels "recruitment-backend/models/db"
)

// PhotoUpload is a pending dossier photo from the multipart request.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        []byte
}

type Provider interface {
	EligibleCandidates() ([]notificationapimodels.EligibleCandidate, error)
	Create(ctx context.Context, data notificationapimodels.NotificationData, personalPhoto *PhotoUpload, idCardPhotos []PhotoUpload) (id string, hMsg string, err error)
	Update(ctx context.Context, id string, data notificationapimodels.NotificationData, personalPhoto *PhotoUpload, idCardPhotos []PhotoUpload) error
	GetByID(id string) (notificationapimodels.NotificationView, error)
	List(search string, pagination apimodels.Pagination) (list []notificationapimodels.NotificationView, rowCount int64, err error)
	Delete(ctx context.Context, id string) error
	GetPhoto(ctx context.Context, id, photoID string) (fileName, contentType string, body []byte, err error)
	GetPersonalPhoto(ctx context.Context, id string) (contentType string, body []byte, err error)
	ExportPDF(id string) (fileName string, pdfFile []byte, err error)
	SendDossier(ctx context.Context, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          notificationstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		storage:        filestorage.Instance,
		mailer:         smtp.Instance,
	}
}

type impl struct {
	store          notificationstore.Provider
	candidateStore candidatestore.Provider
	storage        filestorage.Provider
	mailer         smtp.Provider
}

func (i impl) EligibleCandidates() ([]notificationapimodels.EligibleCandidate, error) {
	list, err := i.store.EligibleCandidates()
	if err != nil {
		return nil, err
	}
	result := make([]notificationapimodels.EligibleCandidate, 0, len(list))
	for _, rec := range list {
		item := notificationapimodels.EligibleCandidate{
			ID:    rec.ID,
			Name:  rec.Name,
			Email: rec.Email,
			Phone: rec.Phone,
			Stage: rec.Stage.Label(),
		}
		if rec.Position != nil {
			item.Position = rec.Position.Title
		}
		result = append(result, item)
	}
	return result, nil
}

func (i impl) Create(ctx context.Context, data notificationapimodels.NotificationData, personalPhoto *PhotoUpload, idCardPhotos []PhotoUpload) (string, string, error) {
	candidateRec, err := i.candidateStore.GetByID(data.CandidateID)
	if err != nil {
		return "", "", err
	}
	if candidateRec == nil {
		return "", "", errors.New("candidate not found")
	}
	if candidateRec.Stage != models.StageOffer && candidateRec.Stage != models.StageHired {
		return "", "a notification requires a candidate in the offer or hired stage", nil
	}
	rec := toDBModel(data)
	rec.CandidateID = data.CandidateID
	id, err := i.store.Create(rec)
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return "", "candidate already has a notification", nil
		}
		return "", "", err
	}
	if err = i.attachPhotos(ctx, id, personalPhoto, idCardPhotos); err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (i impl) Update(ctx context.Context, id string, data notificationapimodels.NotificationData, personalPhoto *PhotoUpload, idCardPhotos []PhotoUpload) error {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("notification not found")
	}
	rec := toDBModel(data)
	rec.ID = id
	rec.CandidateID = existing.CandidateID
	rec.CreatedAt = existing.CreatedAt
	rec.PersonalPhotoKey = existing.PersonalPhotoKey
	if err = i.store.Replace(rec); err != nil {
		return err
	}
	if personalPhoto != nil && existing.PersonalPhotoKey != "" {
		if err = i.storage.Delete(ctx, existing.PersonalPhotoKey); err != nil {
			return err
		}
	}
	return i.attachPhotos(ctx, id, personalPhoto, idCardPhotos)
}

func (i impl) GetByID(id string) (notificationapimodels.NotificationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return notificationapimodels.NotificationView{}, err
	}
	if rec == nil {
		return notificationapimodels.NotificationView{}, errors.New("notification not found")
	}
	return notificationapimodels.NotificationConvert(*rec), nil
}

func (i impl) List(search string, pagination apimodels.Pagination) ([]notificationapimodels.NotificationView, int64, error) {
	rowCount, err := i.store.ListCount(search)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(search, pagination)
	if err != nil {
		return nil, 0, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(ctx context.Context, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("notification not found")
	}
	if rec.PersonalPhotoKey != "" {
		if err = i.storage.Delete(ctx, rec.PersonalPhotoKey); err != nil {
			return err
		}
	}
	for _, photo := range rec.IDCardPhotos {
		if err = i.storage.Delete(ctx, photo.ObjectKey); err != nil {
			return err
		}
	}
	return i.store.Delete(id)
}

func (i impl) GetPhoto(ctx context.Context, id, photoID string) (string, string, []byte, error) {
	rec, err := i.store.GetPhoto(id, photoID)
	if err != nil {
		return "", "", nil, err
	}
	if rec == nil {
		return "", "", nil, errors.New("photo not found")
	}
	body, err := i.storage.Get(ctx, rec.ObjectKey)
	if err != nil {
		return "", "", nil, err
	}
	return rec.FileName, rec.ContentType, body, nil
}

func (i impl) GetPersonalPhoto(ctx context.Context, id string) (string, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil || rec.PersonalPhotoKey == "" {
		return "", nil, errors.New("photo not found")
	}
	body, err := i.storage.Get(ctx, rec.PersonalPhotoKey)
	if err != nil {
		return "", nil, err
	}
	return "image/jpeg", body, nil
}

func (i impl) ExportPDF(id string) (string, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.New("notification not found")
	}
	pdfFile, err := pdfexport.GenerateDossier(notificationapimodels.NotificationConvert(*rec))
	if err != nil {
		return "", nil, err
	}
	return "dossier-" + rec.ID + ".pdf", pdfFile, nil
}

// SendDossier emails the dossier PDF to the candidate.
func (i impl) SendDossier(ctx context.Context, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("notification not found")
	}
	if rec.Email == "" {
		return errors.New("notification has no candidate email")
	}
	fileName, pdfFile, err := i.ExportPDF(id)
	if err != nil {
		return err
	}
	return i.mailer.SendEMailWithAttachment(rec.Email,
		"Thông báo nhận việc - "+rec.FullName,
		"Chào "+rec.FullName+",\n\nHồ sơ nhận việc của bạn được đính kèm theo email này.\n\nPhòng Nhân sự",
		smtp.Attachment{FileName: fileName, Body: pdfFile})
}

func (i impl) attachPhotos(ctx context.Context, id string, personalPhoto *PhotoUpload, idCardPhotos []PhotoUpload) error {
	if personalPhoto != nil {
		objectKey, err := i.storage.Upload(ctx, "notification/"+id, personalPhoto.FileName,
			personalPhoto.ContentType, bytes.NewReader(personalPhoto.Body), personalPhoto.Size)
		if err != nil {
			return err
		}
		if err = i.store.Update(id, map[string]interface{}{"personal_photo_key": objectKey}); err != nil {
			return err
		}
	}
	for _, photo := range idCardPhotos {
		objectKey, err := i.storage.Upload(ctx, "notification/"+id, photo.FileName,
			photo.ContentType, bytes.NewReader(photo.Body), photo.Size)
		if err != nil {
			return err
		}
		_, err = i.store.AddPhoto(dbmodels.NotificationPhoto{
			NotificationID: id,
			FileName:       photo.FileName,
			ObjectKey:      objectKey,
			ContentType:    photo.ContentType,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toDBModel(data notificationapimodels.NotificationData) dbmodels.Notification {
	rec := dbmodels.Notification{
		FullName:         data.FullName,
		Gender:           data.Gender,
		BirthDate:        data.BirthDate,
		BirthPlace:       data.BirthPlace,
		IDNumber:         data.IDNumber,
		Phone:            data.Phone,
		Email:            data.Email,
		PermanentAddress: data.PermanentAddress,
		CurrentAddress:   data.CurrentAddress,
		EducationLevel:   data.EducationLevel,
		School:           data.School,
		Major:            data.Major,
		BankAccount:      data.BankAccount,
		BankName:         data.BankName,
		HasIDCard:        data.HasIDCard,
		HasDegree:        data.HasDegree,
		HasHealthCheck:   data.HasHealthCheck,
		HasPhoto:         data.HasPhoto,
		HasResidence:     data.HasResidence,
		StartDate:        data.StartDate,
		Department:       data.Department,
		JobTitle:         data.JobTitle,
	}
	for _, c := range data.TrainingCourses {
		rec.TrainingCourses = append(rec.TrainingCourses, dbmodels.TrainingCourse{
			Name:     c.Name,
			IssuedBy: c.IssuedBy,
			Year:     c.Year,
		})
	}
	for _, t := range data.PreparationTasks {
		rec.PreparationTasks = append(rec.PreparationTasks, dbmodels.PreparationTask{
			Content:    t.Content,
			Department: t.Department,
		})
	}
	return rec
}

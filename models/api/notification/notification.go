package notificationapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "recruitment-backend/models/db"
)

type TrainingCourse struct {
	Name     string `json:"name"`
	IssuedBy string `json:"issued_by"`
	Year     int    `json:"year"`
}

type PreparationTask struct {
	Content    string `json:"content"`
	Department string `json:"department"`
}

// NotificationData is the JSON payload carried in the multipart `data`
// field of notification create/update.
type NotificationData struct {
	CandidateID string `json:"candidate_id"`

	FullName   string    `json:"full_name"`
	Gender     string    `json:"gender"`
	BirthDate  time.Time `json:"birth_date"`
	BirthPlace string    `json:"birth_place"`
	IDNumber   string    `json:"id_number"`

	Phone            string `json:"phone"`
	Email            string `json:"email"`
	PermanentAddress string `json:"permanent_address"`
	CurrentAddress   string `json:"current_address"`

	EducationLevel string `json:"education_level"`
	School         string `json:"school"`
	Major          string `json:"major"`

	BankAccount string `json:"bank_account"`
	BankName    string `json:"bank_name"`

	HasIDCard      bool `json:"has_id_card"`
	HasDegree      bool `json:"has_degree"`
	HasHealthCheck bool `json:"has_health_check"`
	HasPhoto       bool `json:"has_photo"`
	HasResidence   bool `json:"has_residence"`

	StartDate  time.Time `json:"start_date"`
	Department string    `json:"department"`
	JobTitle   string    `json:"job_title"`

	TrainingCourses  []TrainingCourse  `json:"training_courses"`
	PreparationTasks []PreparationTask `json:"preparation_tasks"`
}

func (n NotificationData) Validate(isCreate bool) error {
	if isCreate && n.CandidateID == "" {
		return errors.New("candidate id is required")
	}
	if n.FullName == "" {
		return errors.New("full name is required")
	}
	if n.IDNumber == "" {
		return errors.New("id number is required")
	}
	for _, c := range n.TrainingCourses {
		if c.Name == "" {
			return errors.New("training course name is required")
		}
	}
	for _, t := range n.PreparationTasks {
		if t.Content == "" {
			return errors.New("preparation task content is required")
		}
	}
	return nil
}

type PhotoView struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

type NotificationView struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidate_id"`
	NotificationData
	PersonalPhotoURL string      `json:"personal_photo_url,omitempty"`
	IDCardPhotos     []PhotoView `json:"id_card_photos"`
	CreatedAt        time.Time   `json:"created_at"`
}

// EligibleCandidate is a candidate that may still receive a notification
// (in offer/hired stage and not yet notified).
type EligibleCandidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Stage    string `json:"stage"`
	Position string `json:"position"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	courses := make([]TrainingCourse, 0, len(rec.TrainingCourses))
	for _, c := range rec.TrainingCourses {
		courses = append(courses, TrainingCourse{Name: c.Name, IssuedBy: c.IssuedBy, Year: c.Year})
	}
	tasks := make([]PreparationTask, 0, len(rec.PreparationTasks))
	for _, t := range rec.PreparationTasks {
		tasks = append(tasks, PreparationTask{Content: t.Content, Department: t.Department})
	}
	photos := make([]PhotoView, 0, len(rec.IDCardPhotos))
	for _, p := range rec.IDCardPhotos {
		photos = append(photos, PhotoView{
			ID:       p.ID,
			FileName: p.FileName,
			URL:      "/api/v1/notification/" + rec.ID + "/photo/" + p.ID,
		})
	}
	view := NotificationView{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		NotificationData: NotificationData{
			CandidateID:      rec.CandidateID,
			FullName:         rec.FullName,
			Gender:           rec.Gender,
			BirthDate:        rec.BirthDate,
			BirthPlace:       rec.BirthPlace,
			IDNumber:         rec.IDNumber,
			Phone:            rec.Phone,
			Email:            rec.Email,
			PermanentAddress: rec.PermanentAddress,
			CurrentAddress:   rec.CurrentAddress,
			EducationLevel:   rec.EducationLevel,
			School:           rec.School,
			Major:            rec.Major,
			BankAccount:      rec.BankAccount,
			BankName:         rec.BankName,
			HasIDCard:        rec.HasIDCard,
			HasDegree:        rec.HasDegree,
			HasHealthCheck:   rec.HasHealthCheck,
			HasPhoto:         rec.HasPhoto,
			HasResidence:     rec.HasResidence,
			StartDate:        rec.StartDate,
			Department:       rec.Department,
			JobTitle:         rec.JobTitle,
			TrainingCourses:  courses,
			PreparationTasks: tasks,
		},
		IDCardPhotos: photos,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.PersonalPhotoKey != "" {
		view.PersonalPhotoURL = "/api/v1/notification/" + rec.ID + "/photo/personal"
	}
	return view
}

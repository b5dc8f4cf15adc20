package dbmodels

import "time"

// Notification is the onboarding dossier prepared for a hired or
// offered candidate. At most one per candidate (unique index).
type Notification struct {
	BaseModel
	CandidateID string     `gorm:"type:varchar(36);uniqueIndex"`
	Candidate   *Candidate `gorm:"foreignKey:CandidateID"`

	// personal
	FullName   string `gorm:"type:varchar(255)"`
	Gender     string `gorm:"type:varchar(20)"`
	BirthDate  time.Time
	BirthPlace string `gorm:"type:varchar(255)"`
	IDNumber   string `gorm:"type:varchar(50)"`

	// contact
	Phone            string `gorm:"type:varchar(50)"`
	Email            string `gorm:"type:varchar(255)"`
	PermanentAddress string
	CurrentAddress   string

	// education
	EducationLevel string `gorm:"type:varchar(255)"`
	School         string `gorm:"type:varchar(255)"`
	Major          string `gorm:"type:varchar(255)"`

	// bank
	BankAccount string `gorm:"type:varchar(50)"`
	BankName    string `gorm:"type:varchar(255)"`

	// document checklist
	HasIDCard      bool
	HasDegree      bool
	HasHealthCheck bool
	HasPhoto       bool
	HasResidence   bool

	StartDate  time.Time
	Department string `gorm:"type:varchar(255)"`
	JobTitle   string `gorm:"type:varchar(255)"`

	PersonalPhotoKey string `gorm:"type:varchar(255)"`

	IDCardPhotos     []NotificationPhoto `gorm:"foreignKey:NotificationID"`
	TrainingCourses  []TrainingCourse    `gorm:"foreignKey:NotificationID"`
	PreparationTasks []PreparationTask   `gorm:"foreignKey:NotificationID"`
}

type NotificationPhoto struct {
	BaseModel
	NotificationID string `gorm:"type:varchar(36);index"`
	FileName       string `gorm:"type:varchar(255)"`
	ObjectKey      string `gorm:"type:varchar(255);uniqueIndex"`
	ContentType    string `gorm:"type:varchar(100)"`
}

type TrainingCourse struct {
	BaseModel
	NotificationID string `gorm:"type:varchar(36);index"`
	Name           string `gorm:"type:varchar(255)"`
	IssuedBy       string `gorm:"type:varchar(255)"`
	Year           int
}

type PreparationTask struct {
	BaseModel
	NotificationID string `gorm:"type:varchar(36);index"`
	Content        string
	Department     string `gorm:"type:varchar(255)"`
}

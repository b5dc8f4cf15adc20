package dbmodels

// CVFile is the metadata row of one stored CV attachment. The binary
// itself lives in object storage under ObjectKey.
type CVFile struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ObjectKey   string `gorm:"type:varchar(255);uniqueIndex"`
	ContentType string `gorm:"type:varchar(100)"`
	Size        int64
}

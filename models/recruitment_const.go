package models

type CandidateSource string

const (
	SourceFacebook CandidateSource = "Facebook"
	SourceEmail    CandidateSource = "Email"
	SourceJobsGo   CandidateSource = "JobsGo"
	SourceOther    CandidateSource = "Khác"
)

func (s CandidateSource) IsValid() bool {
	switch s {
	case SourceFacebook, SourceEmail, SourceJobsGo, SourceOther:
		return true
	}
	return false
}

type PositionStatus string

const (
	PositionStatusOpen      PositionStatus = "Còn tuyển"
	PositionStatusDraft     PositionStatus = "Nhập"
	PositionStatusSuspended PositionStatus = "Tạm dừng"
)

func (s PositionStatus) IsValid() bool {
	switch s {
	case PositionStatusOpen, PositionStatusDraft, PositionStatusSuspended:
		return true
	}
	return false
}

// CompletionStatus grades a probation task in an evaluation.
type CompletionStatus string

const (
	CompletionNotDone       CompletionStatus = "Chưa hoàn thành"
	CompletionDone          CompletionStatus = "Hoàn thiện"
	CompletionAheadOfTime   CompletionStatus = "Hoàn thành trước thời hạn"
	CompletionExceedsTarget CompletionStatus = "Vượt chỉ tiêu"
)

func (s CompletionStatus) IsValid() bool {
	switch s {
	case CompletionNotDone, CompletionDone, CompletionAheadOfTime, CompletionExceedsTarget:
		return true
	}
	return false
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleHR    UserRole = "hr"
)

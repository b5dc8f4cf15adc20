package models

import "github.com/pkg/errors"

// Stage is a step of the hiring pipeline. The set is fixed and ordered;
// clients receive it from the API and must never hardcode their own copy.
type Stage string

const (
	StageNew        Stage = "new"
	StageReviewing  Stage = "reviewing"
	StageInterview1 Stage = "interview1"
	StageInterview2 Stage = "interview2"
	StageOffer      Stage = "offer"
	StageHired      Stage = "hired"
	StageRejected   Stage = "rejected"
	StageArchived   Stage = "archived"
)

type StageInfo struct {
	Key   Stage  `json:"key"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

var stageList = []StageInfo{
	{Key: StageNew, Label: "Tiếp nhận hồ sơ", Order: 1},
	{Key: StageReviewing, Label: "Hồ sơ đề xuất", Order: 2},
	{Key: StageInterview1, Label: "Phỏng vấn vòng 1", Order: 3},
	{Key: StageInterview2, Label: "Phỏng vấn vòng 2", Order: 4},
	{Key: StageOffer, Label: "Đề nghị nhận việc", Order: 5},
	{Key: StageHired, Label: "Đã tuyển", Order: 6},
	{Key: StageRejected, Label: "Từ chối", Order: 7},
	{Key: StageArchived, Label: "Lưu trữ", Order: 8},
}

// Stages returns pipeline stages in display order.
func Stages() []StageInfo {
	list := make([]StageInfo, len(stageList))
	copy(list, stageList)
	return list
}

func (s Stage) IsValid() bool {
	for _, info := range stageList {
		if info.Key == s {
			return true
		}
	}
	return false
}

func (s Stage) Label() string {
	for _, info := range stageList {
		if info.Key == s {
			return info.Label
		}
	}
	return string(s)
}

// ParseStage validates a stage value coming from the API boundary.
// Unknown values are rejected so a candidate can never be written into
// a stage no board column renders.
func ParseStage(value string) (Stage, error) {
	stage := Stage(value)
	if !stage.IsValid() {
		return "", errors.Errorf("unknown pipeline stage: %s", value)
	}
	return stage, nil
}

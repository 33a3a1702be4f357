package dto

import "time"

// SubjectRenamedEvent represents an external rename notification whose new
// subject name may encode a reward trigger
type SubjectRenamedEvent struct {
	SubjectName   string    `json:"subjectName" binding:"required"`
	ParentGroupID string    `json:"parentGroupId"`
	Timestamp     time.Time `json:"timestamp"`
}

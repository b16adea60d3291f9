package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Submission status values
const (
	SubmissionPending          = "Pending"
	SubmissionApproved         = "Approved"
	SubmissionRejected         = "Rejected"
	SubmissionChangesRequested = "Changes Requested"
)

// StringList stores an ordered list of document paths as a JSON array
// in a TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(l))
}

// Submission represents the submissions table
type Submission struct {
	ID             uint       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID      uint       `gorm:"column:project_id" json:"project_id"`
	InternID       uint       `gorm:"column:intern_id" json:"intern_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Description    string     `gorm:"column:description" json:"description"`
	PDFPath        string     `gorm:"column:pdf_path" json:"pdf_path"`
	AdditionalDocs StringList `gorm:"column:additional_docs;type:text" json:"additional_docs"`
	SerialNo       int        `gorm:"column:serial_no" json:"serial_no"`
	Status         string     `gorm:"column:status" json:"status"`
	IsLate         bool       `gorm:"column:is_late" json:"is_late"`
	Feedback       *string    `gorm:"column:feedback" json:"feedback,omitempty"`
	SubmittedAt    time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	ReviewedAt     *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Intern  *User    `gorm:"foreignKey:InternID" json:"intern,omitempty"`
}

// TableName overrides the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}

// IsReviewed reports whether the submission already left the Pending state.
func (s *Submission) IsReviewed() bool {
	return s.Status != SubmissionPending
}

// IsValidReviewStatus reports whether status is a legal review outcome.
func IsValidReviewStatus(status string) bool {
	switch status {
	case SubmissionApproved, SubmissionRejected, SubmissionChangesRequested:
		return true
	}
	return false
}

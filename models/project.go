package models

import "time"

// Project status values
const (
	ProjectOngoing   = "Ongoing"
	ProjectCompleted = "Completed"
)

// Project represents the projects table
type Project struct {
	ID          uint       `gorm:"primaryKey;column:id" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	StartDate   time.Time  `gorm:"column:start_date" json:"start_date"`
	Deadline    time.Time  `gorm:"column:deadline" json:"deadline"`
	InternID    uint       `gorm:"column:intern_id" json:"intern_id"`
	TeamLeadID  uint       `gorm:"column:team_lead_id" json:"team_lead_id"`
	Status      string     `gorm:"column:status" json:"status"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`

	// Relations
	Intern      *User        `gorm:"foreignKey:InternID" json:"intern,omitempty"`
	TeamLead    *User        `gorm:"foreignKey:TeamLeadID" json:"team_lead,omitempty"`
	Submissions []Submission `gorm:"foreignKey:ProjectID" json:"submissions,omitempty"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}

// IsOwnedBy reports whether the project belongs to the given team lead.
func (p *Project) IsOwnedBy(teamLeadID uint) bool {
	return p.TeamLeadID == teamLeadID
}

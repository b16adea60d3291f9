package models

import (
	"time"
)

// Role values stored in users.role
const (
	RoleCEO      = "CEO"
	RoleHR       = "HR"
	RoleTeamLead = "TEAM_LEAD"
	RoleIntern   = "INTERN"
)

type User struct {
	ID                 uint       `gorm:"primaryKey;column:id" json:"id"`
	Name               string     `gorm:"column:name" json:"name"`
	Email              string     `gorm:"column:email;unique" json:"email"`
	Password           string     `gorm:"column:password" json:"-"`
	Role               string     `gorm:"column:role" json:"role"`
	TeamLeadID         *uint      `gorm:"column:team_lead_id" json:"team_lead_id,omitempty"`
	RefreshToken       *string    `gorm:"column:refresh_token" json:"-"`
	RefreshTokenExpiry *time.Time `gorm:"column:refresh_token_expiry" json:"-"`
	ResetToken         *string    `gorm:"column:reset_token" json:"-"`
	ResetTokenExpiry   *time.Time `gorm:"column:reset_token_expiry" json:"-"`
	CreatedAt          time.Time  `gorm:"column:created_at" json:"created_at"`

	// Relations
	TeamLead *User `gorm:"foreignKey:TeamLeadID" json:"team_lead,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

// IsIntern reports whether the user holds the INTERN role.
func (u *User) IsIntern() bool {
	return u.Role == RoleIntern
}

// IsTeamLead reports whether the user holds the TEAM_LEAD role.
func (u *User) IsTeamLead() bool {
	return u.Role == RoleTeamLead
}

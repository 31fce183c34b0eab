package models

import "time"

// Account represents a contest participant identified by an organizational external id.
// An account owns at most one project and up to three team members besides the owner.
type Account struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ExternalID     string    `json:"external_id" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"`
	Name           string    `json:"name" gorm:"size:100"`
	TeamName       string    `json:"team_name" gorm:"size:100"`
	Department     *string   `json:"department,omitempty" gorm:"size:100"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	TeamMembers []TeamMember `json:"team_members,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Project     *Project     `json:"project,omitempty" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}

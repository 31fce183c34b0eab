package models

import "time"

// TeamMember is one roster entry owned by an account. The owner is never stored as a
// member row; re-registration replaces the whole set.
type TeamMember struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AccountID  uint      `json:"account_id" gorm:"not null;index"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	ExternalID string    `json:"external_id" gorm:"size:255;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

package models

import "time"

// Judge is a scoring principal with its own id space, separate from accounts.
// Deleting a judge cascades to their evaluations.
type Judge struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ExternalID     string    `json:"external_id" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"`
	Name           string    `json:"name" gorm:"size:100;not null"`
	IsAdmin        bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Evaluations []Evaluation `json:"evaluations,omitempty" gorm:"foreignKey:JudgeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Judge
func (Judge) TableName() string {
	return "judges"
}

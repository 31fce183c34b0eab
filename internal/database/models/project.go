package models

import "time"

// Project is the single free-text proposal owned by an account. A project row exists
// only while its name is non-empty; submitting an empty name deletes the row.
type Project struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	AccountID       uint      `json:"account_id" gorm:"not null;uniqueIndex"`
	Name            string    `json:"name" gorm:"size:200;not null"`
	TargetUser      string    `json:"target_user" gorm:"type:text"`
	Problem         string    `json:"problem" gorm:"type:text"`
	Solution        string    `json:"solution" gorm:"type:text"`
	DataSources     string    `json:"data_sources" gorm:"type:text"`
	Scenario        string    `json:"scenario" gorm:"type:text"`
	ExpectedBenefit string    `json:"expected_benefit" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

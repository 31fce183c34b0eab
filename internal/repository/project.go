package repository

import (
	"contest-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for project proposals
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByAccountID retrieves the project owned by an account
func (r *ProjectRepository) GetByAccountID(accountID uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "account_id = ?", accountID).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteForAccount removes the project owned by an account, if any
func (r *ProjectRepository) DeleteForAccount(accountID uint) error {
	return r.db.Where("account_id = ?", accountID).Delete(&models.Project{}).Error
}

// GetAll retrieves all projects
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("id").Find(&projects).Error
	return projects, err
}

// Count returns the number of submitted projects
func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// CountByDepartment returns project counts grouped by the owning account's department.
// Accounts without a department are bucketed under "unassigned".
func (r *ProjectRepository) CountByDepartment() (map[string]int64, error) {
	var rows []struct {
		Department *string
		Count      int64
	}
	err := r.db.Model(&models.Project{}).
		Select("accounts.department AS department, COUNT(projects.id) AS count").
		Joins("JOIN accounts ON accounts.id = projects.account_id").
		Group("accounts.department").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := "unassigned"
		if row.Department != nil && *row.Department != "" {
			key = *row.Department
		}
		counts[key] += row.Count
	}
	return counts, nil
}

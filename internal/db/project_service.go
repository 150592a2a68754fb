package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/inkwise/writertools/internal/models"
	"github.com/inkwise/writertools/internal/parser"
)

// CreateProjectRequest holds the data needed to create a new project
type CreateProjectRequest struct {
	UserID      uint
	Name        string
	Status      models.ProjectStatus
	Description string
}

// CreateProject creates a project for the user. The slug is derived from the
// name, and an empty status defaults to IN_PROGRESS.
func CreateProject(req CreateProjectRequest) (*models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	status := req.Status
	if status == "" {
		status = models.StatusInProgress
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid project status %q", status)
	}

	project := models.Project{
		UserID:      req.UserID,
		Name:        name,
		Slug:        parser.Slugify(name),
		Status:      status,
		Description: req.Description,
	}
	if err := DB.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetProject retrieves one of the user's projects by id.
func GetProject(userID, projectID uint) (*models.Project, error) {
	var project models.Project
	err := DB.Where("user_id = ?", userID).First(&project, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project #%d: %w", projectID, ErrNotFound)
		}
		return nil, err
	}
	return &project, nil
}

// ListProjects returns all of the user's projects, newest first.
func ListProjects(userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ActiveProjects returns the user's IN_PROGRESS projects. These are the only
// ones offered in the log-work form's project selector.
func ActiveProjects(userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := DB.Where("user_id = ? AND status = ?", userID, models.StatusInProgress).
		Order("name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProjectStatus moves a project to a new lifecycle status.
func UpdateProjectStatus(userID, projectID uint, status models.ProjectStatus) (*models.Project, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid project status %q", status)
	}

	project, err := GetProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	project.Status = status
	if err := DB.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project. Projects with logged work sessions are
// protected: the delete is refused rather than cascading or orphaning data.
func DeleteProject(userID, projectID uint) error {
	project, err := GetProject(userID, projectID)
	if err != nil {
		return err
	}

	var count int64
	if err := DB.Model(&models.WorkSession{}).Where("project_id = ?", project.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("project #%d: %w", projectID, ErrProjectInUse)
	}

	return DB.Delete(project).Error
}

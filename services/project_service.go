package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"internship-management-api/models"
)

// ProjectService owns project creation and lifecycle edits by team leads.
type ProjectService struct {
	db       *gorm.DB
	notifier Notifier
	now      func() time.Time
}

func NewProjectService(db *gorm.DB, notifier Notifier) *ProjectService {
	return &ProjectService{db: db, notifier: notifier, now: time.Now}
}

type CreateProjectInput struct {
	Title       string
	Description string
	StartDate   time.Time
	Deadline    time.Time
	InternID    uint
	TeamLeadID  uint
}

type EditProjectInput struct {
	ProjectID   uint
	TeamLeadID  uint
	Title       *string
	Description *string
	Deadline    *time.Time
}

// Create assigns a new Ongoing project to an intern. An intern can have at
// most one Ongoing project at a time.
func (s *ProjectService) Create(in CreateProjectInput) (*models.Project, error) {
	if in.Title == "" {
		return nil, validationError("Title is required")
	}
	if in.Deadline.IsZero() {
		return nil, validationError("Deadline is required")
	}

	var project models.Project
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var intern models.User
		if err := tx.Where("id = ? AND role = ?", in.InternID, models.RoleIntern).
			First(&intern).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Intern not found")
			}
			return storageFailure(err)
		}

		var ongoing int64
		if err := tx.Model(&models.Project{}).
			Where("intern_id = ? AND status = ?", in.InternID, models.ProjectOngoing).
			Count(&ongoing).Error; err != nil {
			return storageFailure(err)
		}
		if ongoing > 0 {
			return conflict("Intern already has an ongoing project")
		}

		project = models.Project{
			Title:       in.Title,
			Description: in.Description,
			StartDate:   in.StartDate,
			Deadline:    in.Deadline,
			InternID:    in.InternID,
			TeamLeadID:  in.TeamLeadID,
			Status:      models.ProjectOngoing,
			CreatedAt:   s.now(),
		}
		if err := tx.Create(&project).Error; err != nil {
			return storageFailure(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(in.InternID,
		fmt.Sprintf("You have been assigned a new project: %s", project.Title),
		models.KindProjectAssigned)

	return &project, nil
}

// ownedProject loads a project and verifies team lead ownership.
func (s *ProjectService) ownedProject(projectID, teamLeadID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Project not found")
		}
		return nil, storageFailure(err)
	}
	if !project.IsOwnedBy(teamLeadID) {
		return nil, permissionDenied("Unauthorized action")
	}
	return &project, nil
}

// Edit updates title, description or deadline of an owned project.
func (s *ProjectService) Edit(in EditProjectInput) (*models.Project, error) {
	project, err := s.ownedProject(in.ProjectID, in.TeamLeadID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
		project.Title = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
		project.Description = *in.Description
	}
	if in.Deadline != nil {
		updates["deadline"] = *in.Deadline
		project.Deadline = *in.Deadline
	}
	if len(updates) == 0 {
		return nil, validationError("Nothing to update")
	}
	now := s.now()
	updates["updated_at"] = now
	project.UpdatedAt = &now

	if err := s.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(updates).Error; err != nil {
		return nil, storageFailure(err)
	}
	return project, nil
}

// Complete manually marks an owned project as Completed.
func (s *ProjectService) Complete(projectID, teamLeadID uint) (*models.Project, error) {
	project, err := s.ownedProject(projectID, teamLeadID)
	if err != nil {
		return nil, err
	}
	if project.Status == models.ProjectCompleted {
		return nil, conflict("Project is already completed")
	}

	now := s.now()
	if err := s.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"status":     models.ProjectCompleted,
			"updated_at": now,
		}).Error; err != nil {
		return nil, storageFailure(err)
	}
	project.Status = models.ProjectCompleted
	project.UpdatedAt = &now

	s.notifier.Notify(project.InternID,
		fmt.Sprintf("Your project %q has been marked as completed.", project.Title),
		models.KindProjectCompleted)

	return project, nil
}

// Delete removes an owned project along with its submissions.
func (s *ProjectService) Delete(projectID, teamLeadID uint) error {
	project, err := s.ownedProject(projectID, teamLeadID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).
			Delete(&models.Submission{}).Error; err != nil {
			return storageFailure(err)
		}
		if err := tx.Where("id = ?", project.ID).
			Delete(&models.Project{}).Error; err != nil {
			return storageFailure(err)
		}
		return nil
	})
}

// ListForTeamLead returns the projects owned by the team lead.
func (s *ProjectService) ListForTeamLead(teamLeadID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("team_lead_id = ?", teamLeadID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, storageFailure(err)
	}
	return projects, nil
}

// ListForIntern returns the intern's projects.
func (s *ProjectService) ListForIntern(internID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("intern_id = ?", internID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, storageFailure(err)
	}
	return projects, nil
}

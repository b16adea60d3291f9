package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"internship-management-api/models"
)

// SubmissionService owns the submission lifecycle: creation with per-project
// serial numbers and late detection, the review state machine, and the
// project auto-completion trigger.
type SubmissionService struct {
	db       *gorm.DB
	notifier Notifier
	now      func() time.Time
}

func NewSubmissionService(db *gorm.DB, notifier Notifier) *SubmissionService {
	return &SubmissionService{db: db, notifier: notifier, now: time.Now}
}

// A submission carries one mandatory PDF and at most three extra documents.
const maxAdditionalDocs = 3

type CreateSubmissionInput struct {
	ProjectID      uint
	InternID       uint
	Title          string
	Description    string
	PDFPath        string
	AdditionalDocs []string
}

type ReviewSubmissionInput struct {
	SubmissionID uint
	TeamLeadID   uint
	Status       string
	Feedback     string
}

// ReviewResult reports the review outcome and whether the project was
// completed by this approval.
type ReviewResult struct {
	Submission       models.Submission
	ProjectCompleted bool
}

// Create records a new submission against the intern's own project.
//
// The project row is locked for the duration of the transaction so the
// serial number read-modify-write is atomic: two concurrent creations for
// the same project serialize on the lock and can never observe the same
// MAX(serial_no).
func (s *SubmissionService) Create(in CreateSubmissionInput) (*models.Submission, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationError("Title is required")
	}
	if in.PDFPath == "" {
		return nil, validationError("PDF is required")
	}
	if len(in.AdditionalDocs) > maxAdditionalDocs {
		return nil, validationError(fmt.Sprintf("At most %d additional documents allowed", maxAdditionalDocs))
	}

	var submission models.Submission
	var project models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND intern_id = ?", in.ProjectID, in.InternID).
			First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Project not found")
			}
			return storageFailure(err)
		}

		var maxSerial int64
		if err := tx.Model(&models.Submission{}).
			Where("project_id = ?", project.ID).
			Select("COALESCE(MAX(serial_no), 0)").
			Scan(&maxSerial).Error; err != nil {
			return storageFailure(err)
		}

		now := s.now()
		submission = models.Submission{
			ProjectID:      project.ID,
			InternID:       in.InternID,
			Title:          in.Title,
			Description:    in.Description,
			PDFPath:        in.PDFPath,
			AdditionalDocs: in.AdditionalDocs,
			SerialNo:       int(maxSerial) + 1,
			Status:         models.SubmissionPending,
			IsLate:         now.After(project.Deadline),
			SubmittedAt:    now,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return storageFailure(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	message := "New submission uploaded"
	var intern models.User
	if err := s.db.Select("name").Where("id = ?", in.InternID).First(&intern).Error; err == nil {
		message = "New submission uploaded by " + intern.Name
	}
	s.notifier.Notify(project.TeamLeadID, message, models.KindSubmissionUploaded)

	return &submission, nil
}

// Review applies a team lead's decision to a Pending submission.
//
// Approved, Rejected and Changes Requested are terminal: a submission that
// already left Pending cannot be reviewed again (Conflict). After an
// Approved transition the project is completed exactly when no non-Approved
// submissions remain, whatever order the approvals arrived in. The project
// row is locked so concurrent reviewers cannot both miss the last approval
// or complete the project twice.
func (s *SubmissionService) Review(in ReviewSubmissionInput) (*ReviewResult, error) {
	if !models.IsValidReviewStatus(in.Status) {
		return nil, validationError("Invalid status")
	}

	var submission models.Submission
	completed := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", in.SubmissionID).First(&submission).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Submission not found")
			}
			return storageFailure(err)
		}

		var project models.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", submission.ProjectID).
			First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Project not found")
			}
			return storageFailure(err)
		}

		if !project.IsOwnedBy(in.TeamLeadID) {
			return permissionDenied("Unauthorized action")
		}
		if submission.IsReviewed() {
			return conflict("Submission has already been reviewed")
		}

		// The read above may be a stale snapshot under REPEATABLE READ, so
		// the update itself carries the Pending predicate: only the
		// transaction that wins the Pending transition proceeds.
		now := s.now()
		result := tx.Model(&models.Submission{}).
			Where("id = ? AND status = ?", submission.ID, models.SubmissionPending).
			Updates(map[string]interface{}{
				"status":      in.Status,
				"feedback":    in.Feedback,
				"reviewed_at": now,
			})
		if result.Error != nil {
			return storageFailure(result.Error)
		}
		if result.RowsAffected == 0 {
			return conflict("Submission has already been reviewed")
		}
		submission.Status = in.Status
		submission.Feedback = &in.Feedback
		submission.ReviewedAt = &now

		if in.Status != models.SubmissionApproved {
			return nil
		}

		var remaining int64
		if err := tx.Model(&models.Submission{}).
			Where("project_id = ? AND status <> ?", submission.ProjectID, models.SubmissionApproved).
			Count(&remaining).Error; err != nil {
			return storageFailure(err)
		}
		if remaining > 0 {
			return nil
		}

		if err := tx.Model(&models.Project{}).
			Where("id = ? AND status = ?", submission.ProjectID, models.ProjectOngoing).
			Update("status", models.ProjectCompleted).Error; err != nil {
			return storageFailure(err)
		}
		completed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(submission.InternID,
		fmt.Sprintf("Your submission %q was reviewed: %s", submission.Title, in.Status),
		models.KindFeedback)
	if completed {
		s.notifier.Notify(submission.InternID,
			"All submissions approved. Your project is now completed.",
			models.KindProjectCompleted)
	}

	return &ReviewResult{Submission: submission, ProjectCompleted: completed}, nil
}

// ListForIntern returns the intern's submissions in serial order.
func (s *SubmissionService) ListForIntern(internID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("intern_id = ?", internID).
		Order("serial_no ASC").
		Find(&submissions).Error; err != nil {
		return nil, storageFailure(err)
	}
	return submissions, nil
}

// ListForProject returns a project's submissions to its owning team lead.
func (s *SubmissionService) ListForProject(projectID, teamLeadID uint) ([]models.Submission, error) {
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

	var submissions []models.Submission
	if err := s.db.Where("project_id = ?", projectID).
		Order("serial_no ASC").
		Find(&submissions).Error; err != nil {
		return nil, storageFailure(err)
	}
	return submissions, nil
}

// ListAll returns every submission, newest first. CEO reporting only.
func (s *SubmissionService) ListAll() ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return nil, storageFailure(err)
	}
	return submissions, nil
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"internship-management-api/services"
)

type TeamLeadController struct {
	projects    *services.ProjectService
	submissions *services.SubmissionService
	users       *services.UserService
	analytics   *services.AnalyticsService
}

func NewTeamLeadController(projects *services.ProjectService, submissions *services.SubmissionService, users *services.UserService, analytics *services.AnalyticsService) *TeamLeadController {
	return &TeamLeadController{projects: projects, submissions: submissions, users: users, analytics: analytics}
}

type CreateProjectRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	InternID    uint      `json:"intern_id" binding:"required"`
}

// CreateProject assigns a new project to one of the lead's interns
func (tc *TeamLeadController) CreateProject(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := tc.projects.Create(services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		Deadline:    req.Deadline,
		InternID:    req.InternID,
		TeamLeadID:  teamLeadID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

// GetMyInterns lists interns assigned to the lead
func (tc *TeamLeadController) GetMyInterns(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)

	interns, err := tc.users.ListInternsForTeamLead(teamLeadID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, interns)
}

// GetMyProjects lists the lead's projects
func (tc *TeamLeadController) GetMyProjects(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)

	projects, err := tc.projects.ListForTeamLead(teamLeadID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectSubmissions lists submissions of an owned project
func (tc *TeamLeadController) GetProjectSubmissions(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)
	projectID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	submissions, err := tc.submissions.ListForProject(projectID, teamLeadID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

type ReviewRequest struct {
	Status   string `json:"status" binding:"required"`
	Feedback string `json:"feedback"`
}

// ReviewSubmission applies the lead's decision to a pending submission
func (tc *TeamLeadController) ReviewSubmission(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)
	submissionID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := tc.submissions.Review(services.ReviewSubmissionInput{
		SubmissionID: submissionID,
		TeamLeadID:   teamLeadID,
		Status:       req.Status,
		Feedback:     req.Feedback,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Submission reviewed successfully",
		"submission":        result.Submission,
		"project_completed": result.ProjectCompleted,
	})
}

type EditProjectRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

// EditProject updates title, description or deadline of an owned project
func (tc *TeamLeadController) EditProject(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)
	projectID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	var req EditProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := tc.projects.Edit(services.EditProjectInput{
		ProjectID:   projectID,
		TeamLeadID:  teamLeadID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

// CompleteProject manually marks an owned project as completed
func (tc *TeamLeadController) CompleteProject(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)
	projectID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	project, err := tc.projects.Complete(projectID, teamLeadID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project marked as completed",
		"project": project,
	})
}

// DeleteProject removes an owned project and its submissions
func (tc *TeamLeadController) DeleteProject(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)
	projectID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	if err := tc.projects.Delete(projectID, teamLeadID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// GetDashboard returns the lead's review workload summary
func (tc *TeamLeadController) GetDashboard(c *gin.Context) {
	teamLeadID, _ := getCurrentUserID(c)

	dashboard, err := tc.analytics.TeamLeadDashboard(teamLeadID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

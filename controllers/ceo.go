package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-management-api/services"
)

type CEOController struct {
	users       *services.UserService
	submissions *services.SubmissionService
	analytics   *services.AnalyticsService
}

func NewCEOController(users *services.UserService, submissions *services.SubmissionService, analytics *services.AnalyticsService) *CEOController {
	return &CEOController{users: users, submissions: submissions, analytics: analytics}
}

// AssignTeamLead assigns an intern to a team lead
func (cc *CEOController) AssignTeamLead(c *gin.Context) {
	var req AssignInternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intern_id and team_lead_id required"})
		return
	}

	if err := cc.users.AssignIntern(req.InternID, req.TeamLeadID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Team Lead assigned successfully",
		"intern_id":    req.InternID,
		"team_lead_id": req.TeamLeadID,
	})
}

// GetProjectProgress lists every project with intern and lead names
func (cc *CEOController) GetProjectProgress(c *gin.Context) {
	progress, err := cc.analytics.ProjectProgress()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GetAnalytics returns the company-wide dashboard
func (cc *CEOController) GetAnalytics(c *gin.Context) {
	analytics, err := cc.analytics.CompanyAnalytics()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// GetAllSubmissions lists every submission, newest first
func (cc *CEOController) GetAllSubmissions(c *gin.Context) {
	submissions, err := cc.submissions.ListAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GetProductivity returns the weighted productivity score for one intern
func (cc *CEOController) GetProductivity(c *gin.Context) {
	internID, err := parseUintParam(c, "internId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid intern id"})
		return
	}

	report, err := cc.analytics.Productivity(internID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

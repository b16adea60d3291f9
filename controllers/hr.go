package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-management-api/services"
)

type HRController struct {
	users     *services.UserService
	analytics *services.AnalyticsService
}

func NewHRController(users *services.UserService, analytics *services.AnalyticsService) *HRController {
	return &HRController{users: users, analytics: analytics}
}

type CreateInternRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateIntern onboards a new intern account
func (hc *HRController) CreateIntern(c *gin.Context) {
	var req CreateInternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intern, err := hc.users.CreateIntern(services.CreateInternInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Intern created successfully",
		"intern":  intern,
	})
}

type AssignInternRequest struct {
	InternID   uint `json:"intern_id" binding:"required"`
	TeamLeadID uint `json:"team_lead_id" binding:"required"`
}

// AssignIntern assigns or reassigns an intern to a team lead
func (hc *HRController) AssignIntern(c *gin.Context) {
	var req AssignInternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intern_id and team_lead_id required"})
		return
	}

	if err := hc.users.AssignIntern(req.InternID, req.TeamLeadID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Intern assigned successfully",
		"intern_id":    req.InternID,
		"team_lead_id": req.TeamLeadID,
	})
}

// GetAnalytics returns the HR staffing and project overview
func (hc *HRController) GetAnalytics(c *gin.Context) {
	analytics, err := hc.analytics.HRAnalytics()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-management-api/services"
)

// handleServiceError maps the service error taxonomy to HTTP once, instead
// of per handler.
func handleServiceError(c *gin.Context, err error) {
	svcErr, ok := services.AsServiceError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Kind {
	case services.KindValidation:
		status = http.StatusBadRequest
	case services.KindPermissionDenied:
		status = http.StatusForbidden
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindConflict:
		status = http.StatusConflict
	case services.KindStorageFailure:
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"error": svcErr.Message})
}

func getCurrentUserID(c *gin.Context) (uint, bool) {
	if v, ok := c.Get("userID"); ok {
		switch t := v.(type) {
		case uint:
			return t, true
		case int:
			return uint(t), true
		case int64:
			return uint(t), true
		case float64:
			return uint(t), true
		}
	}
	return 0, false
}

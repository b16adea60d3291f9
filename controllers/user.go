package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-management-api/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetAllUsers lists every user. CEO and HR only (enforced at routing).
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.users.ListAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

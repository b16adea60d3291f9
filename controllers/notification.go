package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-management-api/services"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetNotifications lists the user's notifications, newest first
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID, _ := getCurrentUserID(c)

	notifications, err := nc.notifications.ListForUser(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetNotificationCounter returns the unread count
func (nc *NotificationController) GetNotificationCounter(c *gin.Context) {
	userID, _ := getCurrentUserID(c)

	count, err := nc.notifications.UnreadCount(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkNotificationRead marks a single notification as read
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	userID, _ := getCurrentUserID(c)
	notificationID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	if err := nc.notifications.MarkRead(userID, notificationID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead marks every unread notification as read
func (nc *NotificationController) MarkAllNotificationsRead(c *gin.Context) {
	userID, _ := getCurrentUserID(c)

	if err := nc.notifications.MarkAllRead(userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"internship-management-api/config"
	"internship-management-api/models"
)

// Notifier delivers a message to a user. Delivery is best effort: a failed
// notification must never fail the operation that triggered it.
type Notifier interface {
	Notify(userID uint, message, kind string)
}

// NotificationService persists notifications and mirrors them to e-mail.
type NotificationService struct {
	db       *gorm.DB
	sendMail func(to []string, subject, html string) error
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db, sendMail: config.SendMail}
}

// Notify stores the notification row and dispatches the e-mail copy from a
// goroutine so request latency is unaffected. Errors are logged only.
func (s *NotificationService) Notify(userID uint, message, kind string) {
	notification := models.Notification{
		UserID:    userID,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&notification).Error; err != nil {
		log.Printf("failed to store notification for user %d: %v", userID, err)
	}

	go func() {
		var user models.User
		if err := s.db.Select("email", "name").Where("id = ?", userID).First(&user).Error; err != nil {
			log.Printf("failed to resolve notification recipient %d: %v", userID, err)
			return
		}
		if user.Email == "" {
			return
		}
		subject := notificationSubject(kind)
		html := fmt.Sprintf("<p>Dear %s,</p><p>%s</p>", user.Name, message)
		if err := s.sendMail([]string{user.Email}, subject, html); err != nil {
			log.Printf("failed to send notification mail to %s: %v", user.Email, err)
		}
	}()
}

func notificationSubject(kind string) string {
	switch kind {
	case models.KindSubmissionUploaded:
		return "New submission uploaded"
	case models.KindFeedback:
		return "Your submission has been reviewed"
	case models.KindProjectAssigned:
		return "A project has been assigned to you"
	case models.KindProjectCompleted:
		return "Project completed"
	}
	return "Internship system notification"
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, storageFailure(err)
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for the user.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64
	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, storageFailure(err)
	}
	return count, nil
}

// MarkRead marks one notification of the user as read.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return storageFailure(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("Notification not found")
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read.
func (s *NotificationService) MarkAllRead(userID uint) error {
	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return storageFailure(err)
	}
	return nil
}

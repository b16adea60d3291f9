package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"internship-management-api/models"
	"internship-management-api/utils"
)

// UserService owns HR and CEO user management: intern onboarding and
// team lead assignment.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateInternInput struct {
	Name     string
	Email    string
	Password string
}

// CreateIntern registers a new INTERN account with a bcrypt-hashed password.
func (s *UserService) CreateIntern(in CreateInternInput) (*models.User, error) {
	in.Name = utils.SanitizeInput(in.Name)
	in.Email = strings.ToLower(utils.SanitizeInput(in.Email))

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, validationError("All fields required")
	}
	if !utils.ValidateEmail(in.Email) {
		return nil, validationError("Invalid email address")
	}
	if ok, msg := utils.ValidatePassword(in.Password); !ok {
		return nil, validationError(msg)
	}

	var existing int64
	if err := s.db.Model(&models.User{}).
		Where("email = ?", in.Email).
		Count(&existing).Error; err != nil {
		return nil, storageFailure(err)
	}
	if existing > 0 {
		return nil, conflict("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, storageFailure(err)
	}

	intern := models.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hash),
		Role:      models.RoleIntern,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&intern).Error; err != nil {
		return nil, storageFailure(err)
	}
	return &intern, nil
}

// AssignIntern points an intern at a team lead. Used by both HR and CEO.
func (s *UserService) AssignIntern(internID, teamLeadID uint) error {
	var intern models.User
	if err := s.db.Where("id = ? AND role = ?", internID, models.RoleIntern).
		First(&intern).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Intern not found")
		}
		return storageFailure(err)
	}

	var lead models.User
	if err := s.db.Where("id = ? AND role = ?", teamLeadID, models.RoleTeamLead).
		First(&lead).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Team Lead not found")
		}
		return storageFailure(err)
	}

	if err := s.db.Model(&models.User{}).
		Where("id = ?", internID).
		Update("team_lead_id", teamLeadID).Error; err != nil {
		return storageFailure(err)
	}
	return nil
}

// ListAll returns every user, for CEO and HR views.
func (s *UserService) ListAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Select("id", "name", "email", "role", "team_lead_id").
		Order("id").
		Find(&users).Error; err != nil {
		return nil, storageFailure(err)
	}
	return users, nil
}

// ListInternsForTeamLead returns the interns assigned to a team lead.
func (s *UserService) ListInternsForTeamLead(teamLeadID uint) ([]models.User, error) {
	var interns []models.User
	if err := s.db.Select("id", "name", "email").
		Where("team_lead_id = ? AND role = ?", teamLeadID, models.RoleIntern).
		Order("id").
		Find(&interns).Error; err != nil {
		return nil, storageFailure(err)
	}
	return interns, nil
}

package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/JosephChoi/abcbond-api/models"
	"github.com/JosephChoi/abcbond-api/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Mutable profile fields. Anything else in an update payload is ignored.
var userUpdatableFields = []string{
	"name", "email", "phone", "avatar", "address", "newsletter", "notifications", "theme",
}

type CreateUserInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,pwdmin"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.
		Select("id", "username", "name", "email", "phone", "avatar", "address", "member_since", "created_at").
		Find(&users).Error
	return users, err
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns nil (not an error) on miss. Internal use only: the
// returned record includes the password hash for the authenticator.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Update applies a partial profile update over the allow-list.
func (s *UserService) Update(userID uint, data map[string]interface{}) (*models.User, error) {
	updates := map[string]interface{}{}
	for _, field := range userUpdatableFields {
		if v, ok := data[field]; ok {
			updates[field] = v
		}
	}
	if len(updates) == 0 {
		return nil, utils.NewValidationError("No fields to update")
	}

	if _, err := s.GetByID(userID); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, utils.NewValidationError("Email already in use")
		}
		return nil, err
	}
	return s.GetByID(userID)
}

func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if input.Username == "" || input.Password == "" || input.Name == "" || input.Email == "" {
		return nil, utils.NewValidationError("Required fields are missing")
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, utils.NewValidationError("Username or email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: input.Username,
		Password: string(hash),
		Name:     input.Name,
		Email:    input.Email,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, utils.NewValidationError("Username or email already exists")
		}
		return nil, err
	}
	return s.GetByID(user.ID)
}

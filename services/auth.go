package services

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/JosephChoi/abcbond-api/models"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate checks the username/password pair against the credential
// store. It returns (nil, nil) on no match; the caller decides the response.
// Passwords are stored as bcrypt hashes and compared in constant time.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := NewUserService(s.db).GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}

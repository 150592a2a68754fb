package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/inkwise/writertools/internal/models"
)

// CreateUser registers a new account with a bcrypt-hashed password.
func CreateUser(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	var existing models.User
	if err := DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
	}
	if err := DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate checks a username/password pair and returns the matching user.
func Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByUsername looks up an account by its username.
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// CreateAuthToken issues a fresh opaque login token for the user.
func CreateAuthToken(userID uint) (*models.AuthToken, error) {
	token := models.AuthToken{
		Token:  uuid.NewString(),
		UserID: userID,
	}
	if err := DB.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// UserForToken resolves a login cookie back to its user.
func UserForToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	var auth models.AuthToken
	err := DB.Where("token = ?", token).First(&auth).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var user models.User
	if err := DB.First(&user, auth.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteAuthToken revokes a login token (logout).
func DeleteAuthToken(token string) error {
	return DB.Where("token = ?", token).Delete(&models.AuthToken{}).Error
}

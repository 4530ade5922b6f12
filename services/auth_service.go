package services

import (
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/guru0072/solo-leveling-ai/config"
	"github.com/guru0072/solo-leveling-ai/models"
	"github.com/guru0072/solo-leveling-ai/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type SignupInput struct {
	Email         string
	Password      string
	DisplayName   string
	HeightCm      *int
	WeightKg      *float64
	ActivityLevel string
}

func RegisterUser(input SignupInput) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	level := input.ActivityLevel
	if level == "" {
		level = "sedentary"
	}

	user := models.User{
		ID:            newUserID(),
		Email:         input.Email,
		DisplayName:   input.DisplayName,
		PasswordHash:  hashed,
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		ActivityLevel: level,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser folds "no such email" and "wrong password" into one error
// so login responses don't leak which part failed.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func newUserID() string {
	id := uuid.New()
	return "user_" + hex.EncodeToString(id[:4])
}

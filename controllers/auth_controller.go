package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guru0072/solo-leveling-ai/services"
)

type SignupInput struct {
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required"`
	DisplayName   string   `json:"display_name"`
	HeightCm      *int     `json:"height_cm"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel string   `json:"activity_level"`
}

func Signup(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := services.RegisterUser(services.SignupInput{
			Email:         input.Email,
			Password:      input.Password,
			DisplayName:   input.DisplayName,
			HeightCm:      input.HeightCm,
			WeightKg:      input.WeightKg,
			ActivityLevel: input.ActivityLevel,
		})
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		token, err := tokens.Issue(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": "ok", "user_id": user.ID, "token": token})
	}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := services.AuthenticateUser(input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := tokens.Issue(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "user_id": user.ID, "token": token, "user": user})
	}
}

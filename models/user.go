package models

import "time"

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName   string    `json:"display_name,omitempty"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	HeightCm      *int      `json:"height_cm,omitempty"`
	WeightKg      *float64  `json:"weight_kg,omitempty"`
	ActivityLevel string    `gorm:"default:sedentary" json:"activity_level"`
	CreatedAt     time.Time `json:"created_at"`
}

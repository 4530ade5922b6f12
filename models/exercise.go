package models

import "time"

type Exercise struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	Type        string    `json:"type"` // rope_jump, dumbbell, walk, run
	DurationMin float64   `json:"duration_min"`
	Count       int       `json:"count"`
	Calories    float64   `json:"calories"`
	Metadata    string    `json:"metadata,omitempty"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

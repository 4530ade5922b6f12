package models

import (
	"encoding/json"
	"time"
)

// MissionGoal is the tagged target a mission asks the user to hit,
// e.g. {kind: "rope_skips", target: 600}.
type MissionGoal struct {
	Kind   string  `json:"kind"`
	Target float64 `json:"target"`
}

type Mission struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	XPReward    int       `json:"xp_reward"`
	GoalJSON    string    `gorm:"column:goal_json" json:"-"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *Mission) SetGoal(g MissionGoal) {
	b, _ := json.Marshal(g)
	m.GoalJSON = string(b)
}

// Goal decodes the stored goal descriptor. A row with unreadable goal JSON
// just comes back zero-valued.
func (m *Mission) Goal() MissionGoal {
	var g MissionGoal
	json.Unmarshal([]byte(m.GoalJSON), &g)
	return g
}

// MarshalJSON exposes the goal as a structured object instead of the raw
// goal_json column.
func (m Mission) MarshalJSON() ([]byte, error) {
	type alias Mission
	return json.Marshal(struct {
		alias
		Goal MissionGoal `json:"goal"`
	}{alias(m), m.Goal()})
}

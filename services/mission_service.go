package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/guru0072/solo-leveling-ai/config"
	"github.com/guru0072/solo-leveling-ai/models"
)

// GenerateDailyMissions writes a fresh set of three active missions for the
// user and returns them. Ids are new uuids on every call, so earlier sets
// remain in the table.
func GenerateDailyMissions(userID string) ([]models.Mission, error) {
	missions := []models.Mission{
		newMission(userID, "Rope Trial — 600 Skips",
			"Complete 600 rope skips across the day (breaks allowed). Log as exercise type 'rope_jump' with count.",
			50, models.MissionGoal{Kind: "rope_skips", Target: 600}),
		newMission(userID, "Calorie Guard — 1,600 kcal",
			"Stay under 1600 kcal net today (food calories minus exercise calories). Log your food items.",
			40, models.MissionGoal{Kind: "net_calories", Target: 1600}),
		newMission(userID, "Hydration — 2 L water",
			"Drink at least 2 liters of water today and log it in the app.",
			10, models.MissionGoal{Kind: "water_ml", Target: 2000}),
	}

	err := config.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&missions).Error
	if err != nil {
		return nil, err
	}
	return missions, nil
}

func ListMissions(userID string) ([]models.Mission, error) {
	var missions []models.Mission
	err := config.DB.Where("user_id = ?", userID).Find(&missions).Error
	return missions, err
}

func newMission(userID, title, description string, xp int, goal models.MissionGoal) models.Mission {
	m := models.Mission{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		XPReward:    xp,
		Status:      "active",
	}
	m.SetGoal(goal)
	return m
}

package services

import (
	"github.com/guru0072/solo-leveling-ai/config"
	"github.com/guru0072/solo-leveling-ai/models"
	"github.com/guru0072/solo-leveling-ai/utils"
)

type ExerciseInput struct {
	Type        string
	DurationMin float64
	Count       int
	Calories    *float64
	Metadata    string
}

// LogExercise stores one exercise record and then refreshes the user's daily
// missions. The two writes are independent commits; there is no transaction
// spanning them.
func LogExercise(userID string, input ExerciseInput) (*models.Exercise, error) {
	var calories float64
	if input.Calories != nil {
		calories = *input.Calories
	} else {
		calories = utils.EstimateCalories(input.Type, input.DurationMin, input.Count)
	}

	exercise := models.Exercise{
		UserID:      userID,
		Type:        input.Type,
		DurationMin: input.DurationMin,
		Count:       input.Count,
		Calories:    calories,
		Metadata:    input.Metadata,
	}

	if err := config.DB.Create(&exercise).Error; err != nil {
		return nil, err
	}

	if _, err := GenerateDailyMissions(userID); err != nil {
		return nil, err
	}

	return &exercise, nil
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guru0072/solo-leveling-ai/config"
	"github.com/guru0072/solo-leveling-ai/models"
)

func TestLogExerciseEstimatesCalories(t *testing.T) {
	setupTestDB(t)

	exercise, err := LogExercise("user_ab12cd34", ExerciseInput{
		Type:  "rope_jump",
		Count: 900,
	})
	require.NoError(t, err)

	assert.NotZero(t, exercise.ID)
	assert.Equal(t, 120.0, exercise.Calories)

	var stored models.Exercise
	require.NoError(t, config.DB.First(&stored, exercise.ID).Error)
	assert.Equal(t, "user_ab12cd34", stored.UserID)
	assert.Equal(t, 120.0, stored.Calories)

	// logging refreshes the user's missions
	missions, err := ListMissions("user_ab12cd34")
	require.NoError(t, err)
	assert.Len(t, missions, 3)
}

func TestLogExerciseClientCalories(t *testing.T) {
	setupTestDB(t)

	calories := 250.5
	exercise, err := LogExercise("user_ab12cd34", ExerciseInput{
		Type:        "walk",
		DurationMin: 20,
		Calories:    &calories,
	})
	require.NoError(t, err)
	assert.Equal(t, 250.5, exercise.Calories)
}

func TestLogExerciseRegeneratesEveryTime(t *testing.T) {
	setupTestDB(t)

	for i := 0; i < 2; i++ {
		_, err := LogExercise("user_ab12cd34", ExerciseInput{Type: "walk", DurationMin: 10})
		require.NoError(t, err)
	}

	missions, err := ListMissions("user_ab12cd34")
	require.NoError(t, err)
	assert.Len(t, missions, 6)
}

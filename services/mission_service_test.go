package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDailyMissions(t *testing.T) {
	setupTestDB(t)

	missions, err := GenerateDailyMissions("user_ab12cd34")
	require.NoError(t, err)
	require.Len(t, missions, 3)

	xp := map[int]bool{}
	kinds := map[string]float64{}
	ids := map[string]bool{}
	for _, m := range missions {
		assert.Equal(t, "user_ab12cd34", m.UserID)
		assert.Equal(t, "active", m.Status)
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Description)
		xp[m.XPReward] = true
		kinds[m.Goal().Kind] = m.Goal().Target
		ids[m.ID] = true
	}

	assert.Equal(t, map[int]bool{50: true, 40: true, 10: true}, xp)
	assert.Equal(t, map[string]float64{
		"rope_skips":   600,
		"net_calories": 1600,
		"water_ml":     2000,
	}, kinds)
	assert.Len(t, ids, 3)
}

func TestGenerateDailyMissionsAccumulates(t *testing.T) {
	setupTestDB(t)

	_, err := GenerateDailyMissions("user_ab12cd34")
	require.NoError(t, err)
	second, err := GenerateDailyMissions("user_ab12cd34")
	require.NoError(t, err)
	require.Len(t, second, 3)

	// fresh ids every call, so nothing is replaced
	all, err := ListMissions("user_ab12cd34")
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestListMissionsFiltersByUser(t *testing.T) {
	setupTestDB(t)

	_, err := GenerateDailyMissions("user_aaaaaaaa")
	require.NoError(t, err)
	_, err = GenerateDailyMissions("user_bbbbbbbb")
	require.NoError(t, err)

	missions, err := ListMissions("user_aaaaaaaa")
	require.NoError(t, err)
	require.Len(t, missions, 3)
	for _, m := range missions {
		assert.Equal(t, "user_aaaaaaaa", m.UserID)
	}

	none, err := ListMissions("user_cccccccc")
	require.NoError(t, err)
	assert.Empty(t, none)
}

package utils

import "math"

// EstimateCalories gives a crude per-type estimate for an exercise whose
// calories the client did not supply. Assumes a 75 kg body regardless of the
// user's stored profile.
func EstimateCalories(exerciseType string, durationMin float64, count int) float64 {
	switch exerciseType {
	case "rope_jump":
		// roughly 12 kcal per minute at moderate pace, or 90 skips a minute
		mins := durationMin
		if mins <= 0 {
			mins = math.Max(1, float64(count)/90)
		}
		return round1(12 * mins)
	case "dumbbell":
		mins := durationMin
		if mins <= 0 {
			mins = 10
		}
		return round1(6 * mins)
	case "walk":
		mins := durationMin
		if mins <= 0 {
			mins = 30
		}
		return round1(4.5 * mins)
	default:
		return 20.0
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

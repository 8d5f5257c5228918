package engine

import "math"

const (
	baselineEfficiency  = 80.0
	gapPenaltyPerDegree = 1.5
	maxGapPenalty       = 30.0
	ecoBonus            = 15.0
	largeSwingC         = 2.0
	largeSwingPenalty   = 10.0
)

// ScoreEfficiency rates how cheaply the adjusted setting can be held, 0..100.
func ScoreEfficiency(currentTemp, adjustedTemp, outdoorTemp float64, occupancy bool) int {
	score := baselineEfficiency
	score -= math.Min(maxGapPenalty, math.Abs(adjustedTemp-outdoorTemp)*gapPenaltyPerDegree)

	if !occupancy {
		score += ecoBonus
	}
	if math.Abs(adjustedTemp-currentTemp) > largeSwingC {
		score -= largeSwingPenalty
	}

	score = math.Max(0, math.Min(100, score))
	// ties go to the even neighbour: 72.5 scores 72
	return int(math.RoundToEven(score))
}

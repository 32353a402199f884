package stats

import "math"

// Line holds the counting stats the metric formulas read. Values come from a
// single player-game row; missing source cells arrive here as zero.
type Line struct {
	Points              float64
	FieldGoalsMade      float64
	FieldGoalsAttempted float64
	FreeThrowsMade      float64
	FreeThrowsAttempted float64
	Rebounds            float64
	Assists             float64
	Steals              float64
	Blocks              float64
	Turnovers           float64
}

// TrueShooting computes True Shooting percentage:
//
//	TS% = PTS / (2 * (FGA + 0.44 * FTA))
//
// A player with no field goal or free throw attempts has a zero denominator;
// the result is defined as 0.0 rather than left infinite.
func TrueShooting(l Line) float64 {
	denom := 2 * (l.FieldGoalsAttempted + 0.44*l.FreeThrowsAttempted)
	if denom <= 0 {
		return 0.0
	}
	return l.Points / denom
}

// Efficiency computes a simplified PER-like rating:
//
//	(PTS + REB + AST + STL + BLK) - ((FGA - FGM) + (FTA - FTM) + TO)
//
// Not clamped; a bad night comes out negative.
func Efficiency(l Line) float64 {
	positive := l.Points + l.Rebounds + l.Assists + l.Steals + l.Blocks
	negative := (l.FieldGoalsAttempted - l.FieldGoalsMade) +
		(l.FreeThrowsAttempted - l.FreeThrowsMade) + l.Turnovers
	return positive - negative
}

// Round rounds value to the given number of decimal places.
func Round(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}

package data

import "BoxScoreApi/internal/stats"

// PlayerGameRow is one player's counting stats for one game, keyed by
// (GameID, PersonID). Rows are built once by Load and never mutated.
type PlayerGameRow struct {
	GameID                 string
	GameDate               string
	TeamID                 int64
	TeamName               string
	TeamTricode            string
	PersonID               int64
	PersonName             string
	Position               string
	Minutes                string
	FieldGoalsMade         float64
	FieldGoalsAttempted    float64
	ThreePointersMade      float64
	ThreePointersAttempted float64
	FreeThrowsMade         float64
	FreeThrowsAttempted    float64
	ReboundsOffensive      float64
	ReboundsDefensive      float64
	ReboundsTotal          float64
	Assists                float64
	Steals                 float64
	Blocks                 float64
	Turnovers              float64
	FoulsPersonal          float64
	Points                 float64
	PlusMinusPoints        float64
}

// StatLine projects the row onto the inputs the metric formulas read.
func (r PlayerGameRow) StatLine() stats.Line {
	return stats.Line{
		Points:              r.Points,
		FieldGoalsMade:      r.FieldGoalsMade,
		FieldGoalsAttempted: r.FieldGoalsAttempted,
		FreeThrowsMade:      r.FreeThrowsMade,
		FreeThrowsAttempted: r.FreeThrowsAttempted,
		Rebounds:            r.ReboundsTotal,
		Assists:             r.Assists,
		Steals:              r.Steals,
		Blocks:              r.Blocks,
		Turnovers:           r.Turnovers,
	}
}

package stats

import (
	"BoxScoreApi/internal/assert"
	"testing"
)

func TestTrueShooting(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want float64
	}{
		{
			name: "Regular Shooting Night",
			line: Line{Points: 30, FieldGoalsAttempted: 20, FreeThrowsAttempted: 5},
			want: 30 / 44.4,
		},
		{
			name: "No Attempts",
			line: Line{Points: 0, FieldGoalsAttempted: 0, FreeThrowsAttempted: 0},
			want: 0.0,
		},
		{
			name: "Free Throws Only",
			line: Line{Points: 2, FreeThrowsAttempted: 2},
			want: 2 / (2 * (0.44 * 2)),
		},
		{
			name: "Perfect Game",
			line: Line{Points: 4, FieldGoalsAttempted: 2},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, TrueShooting(tt.line), tt.want)
		})
	}
}

func TestTrueShootingNeverNegative(t *testing.T) {
	lines := []Line{
		{},
		{Points: 50, FieldGoalsAttempted: 1},
		{FieldGoalsAttempted: 30, FreeThrowsAttempted: 10},
	}
	for _, l := range lines {
		if got := TrueShooting(l); got < 0 {
			t.Errorf("got: %v; expected non-negative", got)
		}
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want float64
	}{
		{
			name: "All Around Game",
			line: Line{
				Points:              20,
				Rebounds:            10,
				Assists:             5,
				Steals:              2,
				Blocks:              1,
				FieldGoalsMade:      8,
				FieldGoalsAttempted: 18,
				FreeThrowsMade:      4,
				FreeThrowsAttempted: 5,
				Turnovers:           3,
			},
			want: 24,
		},
		{
			name: "Empty Line",
			line: Line{},
			want: 0,
		},
		{
			name: "Negative Rating",
			line: Line{FieldGoalsAttempted: 10, Turnovers: 4},
			want: -14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Efficiency(tt.line), tt.want)
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int
		want   float64
	}{
		{name: "Three Places", value: 30 / 44.4, places: 3, want: 0.676},
		{name: "Two Places", value: 12.345, places: 2, want: 12.35},
		{name: "Negative Value", value: -3.456, places: 2, want: -3.46},
		{name: "Whole Number", value: 24, places: 2, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Round(tt.value, tt.places), tt.want)
		})
	}
}

package data

import (
	"BoxScoreApi/internal/assert"
	"testing"
)

func TestLoad(t *testing.T) {
	rows, err := Load("testdata/box_scores.csv")
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 4)

	tatum := rows[0]
	assert.Equal(t, tatum.GameID, "0042300101")
	assert.Equal(t, tatum.GameDate, "2024-04-21")
	assert.Equal(t, tatum.TeamID, int64(1610612738))
	assert.Equal(t, tatum.TeamName, "Celtics")
	assert.Equal(t, tatum.TeamTricode, "BOS")
	assert.Equal(t, tatum.PersonID, int64(1628369))
	assert.Equal(t, tatum.PersonName, "Jayson Tatum")
	assert.Equal(t, tatum.Position, "F")
	assert.Equal(t, tatum.Minutes, "40:12")
	assert.Equal(t, tatum.FieldGoalsAttempted, 18.0)
	assert.Equal(t, tatum.ReboundsTotal, 11.0)
	assert.Equal(t, tatum.Points, 23.0)
	assert.Equal(t, tatum.PlusMinusPoints, 10.0)
}

func TestLoadCoercionFallback(t *testing.T) {
	rows, err := Load("testdata/box_scores.csv")
	assert.NilError(t, err)

	// Empty freeThrowsAttempted cell normalizes to zero.
	assert.Equal(t, rows[1].FreeThrowsAttempted, 0.0)

	// Non-numeric fieldGoalsMade cell normalizes to zero.
	assert.Equal(t, rows[3].FieldGoalsMade, 0.0)
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "Missing File", path: "testdata/no_such_file.csv"},
		{name: "Short Record", path: "testdata/short_row.csv"},
		{name: "Missing Column", path: "testdata/missing_column.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Errorf("got: nil; expected load error for %q", tt.path)
			}
		})
	}
}

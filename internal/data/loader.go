package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

var requiredColumns = []string{
	"gameId",
	"game_date",
	"teamId",
	"teamName",
	"teamTricode",
	"personId",
	"personName",
	"position",
	"minutes",
	"fieldGoalsMade",
	"fieldGoalsAttempted",
	"threePointersMade",
	"threePointersAttempted",
	"freeThrowsMade",
	"freeThrowsAttempted",
	"reboundsOffensive",
	"reboundsDefensive",
	"reboundsTotal",
	"assists",
	"steals",
	"blocks",
	"turnovers",
	"foulsPersonal",
	"points",
	"plusMinusPoints",
}

// Load reads the box score CSV at path into the in-memory row set. Columns
// are located by header label rather than position. Loading is
// all-or-nothing: a missing file, a missing column, or a short record fails
// the load. A numeric cell that fails to parse is normalized to zero so
// downstream arithmetic stays total.
func Load(path string) ([]PlayerGameRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening box score file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing box score file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("box score file %q has no header row", path)
	}

	index := make(map[string]int)
	for i, label := range records[0] {
		index[label] = i
	}
	for _, label := range requiredColumns {
		if _, ok := index[label]; !ok {
			return nil, fmt.Errorf("box score file %q missing column %q", path, label)
		}
	}

	rows := make([]PlayerGameRow, 0, len(records)-1)
	for _, record := range records[1:] {
		cell := func(label string) string {
			return record[index[label]]
		}

		rows = append(rows, PlayerGameRow{
			GameID:                 cell("gameId"),
			GameDate:               cell("game_date"),
			TeamID:                 toInt(cell("teamId")),
			TeamName:               cell("teamName"),
			TeamTricode:            cell("teamTricode"),
			PersonID:               toInt(cell("personId")),
			PersonName:             cell("personName"),
			Position:               cell("position"),
			Minutes:                cell("minutes"),
			FieldGoalsMade:         toFloat(cell("fieldGoalsMade")),
			FieldGoalsAttempted:    toFloat(cell("fieldGoalsAttempted")),
			ThreePointersMade:      toFloat(cell("threePointersMade")),
			ThreePointersAttempted: toFloat(cell("threePointersAttempted")),
			FreeThrowsMade:         toFloat(cell("freeThrowsMade")),
			FreeThrowsAttempted:    toFloat(cell("freeThrowsAttempted")),
			ReboundsOffensive:      toFloat(cell("reboundsOffensive")),
			ReboundsDefensive:      toFloat(cell("reboundsDefensive")),
			ReboundsTotal:          toFloat(cell("reboundsTotal")),
			Assists:                toFloat(cell("assists")),
			Steals:                 toFloat(cell("steals")),
			Blocks:                 toFloat(cell("blocks")),
			Turnovers:              toFloat(cell("turnovers")),
			FoulsPersonal:          toFloat(cell("foulsPersonal")),
			Points:                 toFloat(cell("points")),
			PlusMinusPoints:        toFloat(cell("plusMinusPoints")),
		})
	}

	return rows, nil
}

// toFloat coerces a numeric cell, falling back to zero for empty or
// malformed values instead of rejecting the row.
func toFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func toInt(s string) int64 {
	return int64(toFloat(s))
}

package data

import (
	"fmt"
	"slices"

	"BoxScoreApi/internal/stats"
)

// GameInfo is one entry in the game listing. Teams carries a single display
// string describing the matchup rather than one element per team.
type GameInfo struct {
	GameID   string   `json:"gameId"`
	GameDate string   `json:"game_date"`
	Teams    []string `json:"teams"`
}

// PlayerStats is a player-game row enriched with the derived metrics.
type PlayerStats struct {
	GameID       string  `json:"gameId"`
	TeamID       int64   `json:"teamId"`
	TeamName     string  `json:"teamName"`
	TeamTricode  string  `json:"teamTricode"`
	PersonID     int64   `json:"personId"`
	PersonName   string  `json:"personName"`
	Position     string  `json:"position"`
	Minutes      string  `json:"minutes"`
	Points       int64   `json:"points"`
	Rebounds     int64   `json:"rebounds"`
	Assists      int64   `json:"assists"`
	Steals       int64   `json:"steals"`
	Blocks       int64   `json:"blocks"`
	Turnovers    int64   `json:"turnovers"`
	TrueShooting float64 `json:"true_shooting"`
	Efficiency   float64 `json:"efficiency"`
	PlusMinus    int64   `json:"plusMinus"`
}

// ChartData packages parallel sequences aligned by player so the frontend
// can feed them straight into its charts.
type ChartData struct {
	Labels   []string      `json:"labels"`
	Datasets ChartDatasets `json:"datasets"`
}

type ChartDatasets struct {
	Points       []float64 `json:"points"`
	TrueShooting []float64 `json:"true_shooting"`
	Momentum     []float64 `json:"momentum"`
}

// GameModel serves read queries over the immutable row set built at startup.
type GameModel struct {
	rows []PlayerGameRow
}

// GetAll returns one GameInfo per distinct gameId, in the order games first
// appear in the source. The date is taken from the first row of each group;
// rows of one game share a single date. Two distinct team names render as
// "A vs. B" in first-encountered order; a game with a single team name
// renders it alone. Names beyond the first two are ignored.
func (m *GameModel) GetAll() []GameInfo {
	order := make([]string, 0)
	dates := make(map[string]string)
	teams := make(map[string][]string)

	for _, row := range m.rows {
		if _, seen := teams[row.GameID]; !seen {
			order = append(order, row.GameID)
			dates[row.GameID] = row.GameDate
		}
		if len(teams[row.GameID]) < 2 && !slices.Contains(teams[row.GameID], row.TeamName) {
			teams[row.GameID] = append(teams[row.GameID], row.TeamName)
		}
	}

	games := make([]GameInfo, 0, len(order))
	for _, id := range order {
		names := teams[id]
		display := names[0]
		if len(names) > 1 {
			display = fmt.Sprintf("%s vs. %s", names[0], names[1])
		}
		games = append(games, GameInfo{
			GameID:   id,
			GameDate: dates[id],
			Teams:    []string{display},
		})
	}

	return games
}

// GetPlayers returns every row for the given game enriched with True
// Shooting (3 decimal places) and efficiency (2 decimal places). Returns
// ErrRecordNotFound when no row matches.
func (m *GameModel) GetPlayers(gameID string) ([]PlayerStats, error) {
	players := make([]PlayerStats, 0)

	for _, row := range m.rows {
		if row.GameID != gameID {
			continue
		}

		line := row.StatLine()
		players = append(players, PlayerStats{
			GameID:       row.GameID,
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			TeamTricode:  row.TeamTricode,
			PersonID:     row.PersonID,
			PersonName:   row.PersonName,
			Position:     row.Position,
			Minutes:      row.Minutes,
			Points:       int64(row.Points),
			Rebounds:     int64(row.ReboundsTotal),
			Assists:      int64(row.Assists),
			Steals:       int64(row.Steals),
			Blocks:       int64(row.Blocks),
			Turnovers:    int64(row.Turnovers),
			TrueShooting: stats.Round(stats.TrueShooting(line), 3),
			Efficiency:   stats.Round(stats.Efficiency(line), 2),
			PlusMinus:    int64(row.PlusMinusPoints),
		})
	}

	if len(players) == 0 {
		return nil, ErrRecordNotFound
	}

	return players, nil
}

// GetCharts returns the chart sequences for the given game in source row
// order. Labels and all three datasets stay aligned by player. Returns
// ErrRecordNotFound when no row matches.
func (m *GameModel) GetCharts(gameID string) (*ChartData, error) {
	chart := &ChartData{
		Labels: make([]string, 0),
		Datasets: ChartDatasets{
			Points:       make([]float64, 0),
			TrueShooting: make([]float64, 0),
			Momentum:     make([]float64, 0),
		},
	}

	for _, row := range m.rows {
		if row.GameID != gameID {
			continue
		}

		chart.Labels = append(chart.Labels, row.PersonName)
		chart.Datasets.Points = append(chart.Datasets.Points, row.Points)
		chart.Datasets.TrueShooting = append(chart.Datasets.TrueShooting,
			stats.Round(stats.TrueShooting(row.StatLine()), 3))
		chart.Datasets.Momentum = append(chart.Datasets.Momentum, row.PlusMinusPoints)
	}

	if len(chart.Labels) == 0 {
		return nil, ErrRecordNotFound
	}

	return chart, nil
}

// Rows reports how many player-game rows the dataset holds.
func (m *GameModel) Rows() int {
	return len(m.rows)
}

// Games reports how many distinct games the dataset holds.
func (m *GameModel) Games() int {
	ids := make(map[string]bool)
	for _, row := range m.rows {
		ids[row.GameID] = true
	}
	return len(ids)
}

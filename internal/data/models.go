package data

// Models wraps the read models served by the API. Every model shares the
// same immutable row set built once at startup.
type Models struct {
	Games GameModel
}

func NewModels(rows []PlayerGameRow) Models {
	return Models{
		Games: GameModel{rows: rows},
	}
}

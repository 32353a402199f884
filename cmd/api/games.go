package main

import (
	"BoxScoreApi/internal/data"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) ListGames(w http.ResponseWriter, r *http.Request) {
	games := app.models.Games.GetAll()

	err := app.writeJSON(w, http.StatusOK, envelope{"games": games}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetGamePlayers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	players, err := app.models.Games.GetPlayers(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"players": players}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetGameCharts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	chart, err := app.models.Games.GetCharts(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"chart": chart}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

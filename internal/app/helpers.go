package app

import (
	"log/slog"
	"net/http"

	"github.com/metinatakli/train-seat-reservation/internal/jsonutil"
	appmiddleware "github.com/metinatakli/train-seat-reservation/internal/middleware"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	return appmiddleware.Logger(r.Context(), app.logger)
}

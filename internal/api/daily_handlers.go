package api

import (
	"net/http"
	"time"

	"github.com/mirela/brainplay/internal/daily"
	"github.com/mirela/brainplay/internal/errors"
	"github.com/mirela/brainplay/internal/logger"
)

// handleDailyChallenge returns the deterministic challenge for a date.
// Defaults to the server's current day; ?date=YYYY-MM-DD selects another.
func (s *Server) handleDailyChallenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("date", "must be YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	challenge := daily.Generate(date)
	log.Debug("daily challenge generated: date=%s, type=%s", challenge.Date, challenge.Type)
	respondJSON(w, r, http.StatusOK, challenge)
}

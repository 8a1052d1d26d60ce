package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/daily", s.handleDailyChallenge)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Post("/worksheets", s.handleGenerateWorksheet)

		r.Post("/profiles", s.handleCreateProfile)
		r.Post("/profiles/login", s.handleLogin)
		r.Route("/profiles/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetProfile)
			r.Put("/", s.handleUpdateProfile)
			r.Post("/progress", s.handleSaveProgress)
			r.Post("/achievements", s.handleSaveAchievement)
			r.Post("/evaluate", s.handleEvaluateAchievements)
			r.Post("/daily", s.handleSaveDailyChallenge)
			r.Get("/streak", s.handleStreak)
			r.Put("/preferences/{key}", s.handleSetPreference)
			r.Post("/sync", s.handleSync)
		})
	})

	return r
}

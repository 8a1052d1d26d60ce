package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mirela/brainplay/internal/models"
)

type saveProgressRequest struct {
	GameID        string   `json:"gameId"`
	Score         int      `json:"score"`
	BestStreak    *int     `json:"bestStreak"`
	AdaptiveLevel *float64 `json:"adaptiveLevel"`
}

func (s *Server) handleSaveProgress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req saveProgressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	progress, err := s.ProgressService.SaveProgress(r.Context(), models.ProgressUpdate{
		ProfileID:     id,
		GameID:        req.GameID,
		Score:         req.Score,
		BestStreak:    req.BestStreak,
		AdaptiveLevel: req.AdaptiveLevel,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, progress)
}

type saveAchievementRequest struct {
	MedalID string `json:"medalId"`
	Tier    string `json:"tier"`
}

func (s *Server) handleSaveAchievement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req saveAchievementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ProgressService.SaveAchievement(r.Context(), id, req.MedalID, req.Tier); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleEvaluateAchievements(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var stats models.GameStats
	if err := decodeJSON(w, r, &stats); err != nil {
		handleError(w, r, err)
		return
	}

	upgrades, err := s.ProgressService.EvaluateAchievements(r.Context(), id, stats)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{"upgrades": upgrades})
}

type saveDailyRequest struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

func (s *Server) handleSaveDailyChallenge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req saveDailyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ProgressService.SaveDailyChallenge(r.Context(), id, req.Date, req.Score); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	info, err := s.ProgressService.Streak(r.Context(), id, time.Now())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, info)
}

type setPreferenceRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleSetPreference(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := chi.URLParam(r, "key")

	var req setPreferenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ProgressService.SetPreference(r.Context(), id, key, req.Value); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	entries, err := s.ProgressService.Leaderboard(r.Context(), gameID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]interface{}{"entries": entries})
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mirela/brainplay/internal/logger"
)

type createProfileRequest struct {
	Name        string `json:"name"`
	AvatarColor string `json:"avatarColor"`
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	full, err := s.ProfileService.CreateProfile(r.Context(), req.Name, req.AvatarColor)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, full)
}

type loginRequest struct {
	AccessCode string `json:"accessCode"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	full, err := s.ProfileService.LoginWithCode(r.Context(), req.AccessCode)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, full)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	full, err := s.ProfileService.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, full)
}

type updateProfileRequest struct {
	Name        *string `json:"name"`
	AvatarColor *string `json:"avatarColor"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	profile, err := s.ProfileService.UpdateProfile(r.Context(), id, req.Name, req.AvatarColor)
	if err != nil {
		handleError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("profile updated: id=%s", id)
	respondJSON(w, r, http.StatusOK, profile)
}

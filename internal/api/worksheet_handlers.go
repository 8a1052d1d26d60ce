package api

import (
	"net/http"

	"github.com/mirela/brainplay/internal/errors"
	"github.com/mirela/brainplay/internal/worksheet"
)

// handleGenerateWorksheet proxies worksheet generation to the external
// generator and streams the rendered document back.
func (s *Server) handleGenerateWorksheet(w http.ResponseWriter, r *http.Request) {
	var req worksheet.Request
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if req.Topic == "" {
		handleError(w, r, errors.NewValidationError("topic", "cannot be empty"))
		return
	}
	if req.NumProblems <= 0 || req.NumProblems > 50 {
		handleError(w, r, errors.NewValidationError("num_problems", "must be between 1 and 50"))
		return
	}

	document, contentType, err := s.WorksheetClient.Generate(r.Context(), req)
	if err != nil {
		handleError(w, r, errors.NewUpstreamError("worksheet generator", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

package api

import (
	"github.com/mirela/brainplay/internal/services"
	"github.com/mirela/brainplay/internal/worksheet"
)

// Server holds the HTTP surface's dependencies.
type Server struct {
	ProfileService  services.ProfileService
	ProgressService services.ProgressService
	SyncService     services.SyncService
	WorksheetClient *worksheet.Client
}

package services

import (
	"github.com/projectpulse/dashboard-services/db"
	"github.com/projectpulse/dashboard-services/internal/appconfig"
)

// Service contains all shared dependencies for handlers.
type Service struct {
	Config *appconfig.Config
	DB     db.Store
}

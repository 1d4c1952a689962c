package services

import (
	"time"

	"github.com/blogem/petition-desk/metrics"
	"github.com/blogem/petition-desk/repositories"
)

// Services holds all service instances
type Services struct {
	Entries EntryService
	Export  ExportService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, m *metrics.Metrics) *Services {
	return &Services{
		Entries: NewEntryService(repos.Entries, repos.Available(), m, time.Now),
		Export:  NewExportService(repos.Entries, repos.Available()),
	}
}

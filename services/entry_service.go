package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/petition-desk/apperrors"
	"github.com/blogem/petition-desk/metrics"
	"github.com/blogem/petition-desk/models"
	"github.com/blogem/petition-desk/repositories"
)

// EntryService interface defines submission business logic
type EntryService interface {
	// Ready fails with ServiceUnavailable when persistence was unreachable at startup
	Ready() error
	Submit(ctx context.Context, form *models.EntryForm) (*models.Entry, error)
	ListRecords(ctx context.Context) ([]models.EntryView, error)
	GetCounts(ctx context.Context) (*models.Counts, error)
}

// entryService implements EntryService interface
type entryService struct {
	entryRepo repositories.EntryRepository
	available bool
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewEntryService creates a new entry service
func NewEntryService(entryRepo repositories.EntryRepository, available bool, m *metrics.Metrics, now func() time.Time) EntryService {
	return &entryService{
		entryRepo: entryRepo,
		available: available,
		metrics:   m,
		now:       now,
	}
}

func (s *entryService) Ready() error {
	if !s.available {
		return apperrors.ServiceUnavailable()
	}
	return nil
}

// Submit validates the form and stores it as a new entry
func (s *entryService) Submit(ctx context.Context, form *models.EntryForm) (*models.Entry, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	if missing := form.MissingField(); missing != "" {
		return nil, apperrors.MissingField(missing)
	}

	entry := form.ToEntry(s.now())
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, apperrors.Internal(apperrors.InsertFailedMsg, err)
	}

	if s.metrics != nil {
		s.metrics.ObserveSubmission(entry.FormType)
	}
	log.WithFields(log.Fields{
		"id":        entry.ID,
		"form_type": entry.FormType,
	}).Info("Entry submitted")

	return entry, nil
}

// ListRecords returns all entries, newest first
func (s *entryService) ListRecords(ctx context.Context) ([]models.EntryView, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	records := make([]models.EntryView, 0)
	err := s.entryRepo.ForEachNewestFirst(ctx, func(entry *models.Entry) error {
		records = append(records, models.NewEntryView(entry))
		return nil
	})
	if err != nil {
		return nil, apperrors.Internal(apperrors.LoadRecordsFailedMsg, err)
	}

	return records, nil
}

// GetCounts returns the total and per form type counts. Form types other
// than petition and demand are only part of the total.
func (s *entryService) GetCounts(ctx context.Context) (*models.Counts, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	total, err := s.entryRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal(apperrors.CountFailedMsg, err)
	}

	petitions, err := s.entryRepo.CountByFormType(ctx, models.FormTypePetition)
	if err != nil {
		return nil, apperrors.Internal(apperrors.CountFailedMsg, err)
	}

	demands, err := s.entryRepo.CountByFormType(ctx, models.FormTypeDemand)
	if err != nil {
		return nil, apperrors.Internal(apperrors.CountFailedMsg, err)
	}

	return &models.Counts{
		Total:     total,
		Petitions: petitions,
		Demands:   demands,
	}, nil
}

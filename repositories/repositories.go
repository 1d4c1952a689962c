package repositories

import (
	"context"
	"errors"

	"github.com/blogem/petition-desk/database"
	"github.com/blogem/petition-desk/models"
)

// ErrUnavailable is returned by every repository call when the store could
// not be reached at startup.
var ErrUnavailable = errors.New("persistence unavailable")

// EntryRepository interface defines entry persistence operations.
// Entries are immutable, so there is no update or delete.
type EntryRepository interface {
	// Create inserts the entry and sets its ID
	Create(ctx context.Context, entry *models.Entry) error
	// ForEachNewestFirst calls fn for every entry ordered by created_at
	// descending, stopping at the first error
	ForEachNewestFirst(ctx context.Context, fn func(*models.Entry) error) error
	Count(ctx context.Context) (int64, error)
	CountByFormType(ctx context.Context, formType string) (int64, error)
}

// Repositories struct holds all repository interfaces
type Repositories struct {
	Entries   EntryRepository
	available bool
}

// NewRepositories creates the repositories for the store's backend
func NewRepositories(store *database.Store) *Repositories {
	if !store.Available() {
		return &Repositories{Entries: unavailableEntryRepository{}}
	}

	var entries EntryRepository
	switch store.Backend() {
	case database.BackendMongo:
		entries = NewMongoEntryRepository(store.Entries())
	case database.BackendSQLite:
		entries = NewSQLiteEntryRepository(store.SQL())
	default:
		return &Repositories{Entries: unavailableEntryRepository{}}
	}

	return &Repositories{Entries: entries, available: true}
}

// Available reports whether the repositories are backed by a reachable store
func (r *Repositories) Available() bool {
	return r.available
}

type unavailableEntryRepository struct{}

func (unavailableEntryRepository) Create(context.Context, *models.Entry) error {
	return ErrUnavailable
}

func (unavailableEntryRepository) ForEachNewestFirst(context.Context, func(*models.Entry) error) error {
	return ErrUnavailable
}

func (unavailableEntryRepository) Count(context.Context) (int64, error) {
	return 0, ErrUnavailable
}

func (unavailableEntryRepository) CountByFormType(context.Context, string) (int64, error) {
	return 0, ErrUnavailable
}

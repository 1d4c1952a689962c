package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/blogem/petition-desk/config"
)

// EntriesCollection is the collection (or table) holding all entries
const EntriesCollection = "students"

type Backend string

const (
	BackendMongo  Backend = "mongodb"
	BackendSQLite Backend = "sqlite"
)

var ErrUnsupportedScheme = errors.New("unsupported connection string scheme")

// Store is the persistence handle shared by all requests. Its availability
// is decided once by Connect and never changes afterwards.
type Store struct {
	backend   Backend
	available bool

	mongoClient *mongo.Client
	mongoDB     *mongo.Database
	sqlDB       *sql.DB
}

// Connect opens the configured endpoint and pings it. It never fails: when
// the endpoint cannot be opened or does not answer, the returned store
// reports Available() == false and the service runs in degraded mode.
func Connect(ctx context.Context, cfg *config.Config) *Store {
	backend, target, err := parseURI(cfg.MongoURI)
	if err != nil {
		log.WithError(err).Error("Database connection string rejected, running without persistence")
		return &Store{}
	}

	store := &Store{backend: backend}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	switch backend {
	case BackendMongo:
		client, err := openMongo(pingCtx, target)
		if err != nil {
			log.WithError(err).WithField("backend", backend).Error("Database unreachable, running without persistence")
			return store
		}
		store.mongoClient = client
		store.mongoDB = client.Database(cfg.DatabaseName)
		ensureMongoIndexes(pingCtx, store.mongoDB.Collection(EntriesCollection))
	case BackendSQLite:
		db, err := openSQLite(pingCtx, target)
		if err != nil {
			log.WithError(err).WithField("backend", backend).Error("Database unreachable, running without persistence")
			return store
		}
		store.sqlDB = db
	}

	store.available = true
	log.WithFields(log.Fields{
		"backend":  backend,
		"database": cfg.DatabaseName,
	}).Info("Database connected")
	return store
}

// NewSQLiteStore wraps an already opened and migrated SQLite handle
func NewSQLiteStore(db *sql.DB) *Store {
	return &Store{backend: BackendSQLite, available: db != nil, sqlDB: db}
}

// NewMongoStore wraps an already connected client
func NewMongoStore(client *mongo.Client, databaseName string) *Store {
	store := &Store{backend: BackendMongo, available: client != nil, mongoClient: client}
	if client != nil {
		store.mongoDB = client.Database(databaseName)
	}
	return store
}

// Unavailable returns a store for the given backend that rejects all data access
func Unavailable(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Available() bool {
	return s != nil && s.available
}

func (s *Store) Backend() Backend {
	return s.backend
}

// Entries returns the Mongo entries collection, nil for other backends
func (s *Store) Entries() *mongo.Collection {
	if s.mongoDB == nil {
		return nil
	}
	return s.mongoDB.Collection(EntriesCollection)
}

// SQL returns the SQLite handle, nil for other backends
func (s *Store) SQL() *sql.DB {
	return s.sqlDB
}

// Close releases the underlying connection, if any
func (s *Store) Close(ctx context.Context) error {
	switch {
	case s.mongoClient != nil:
		return s.mongoClient.Disconnect(ctx)
	case s.sqlDB != nil:
		return s.sqlDB.Close()
	}
	return nil
}

// parseURI picks the backend from the connection string scheme and returns
// the driver-specific target.
func parseURI(uri string) (Backend, string, error) {
	switch {
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		return BackendMongo, uri, nil
	case strings.HasPrefix(uri, "sqlite://"):
		path := strings.TrimPrefix(uri, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite connection string %q has no path", uri)
		}
		return BackendSQLite, path, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, redact(uri))
}

// redact strips credentials from a connection string before logging it
func redact(uri string) string {
	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		return "<invalid>"
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = "***@" + rest[at+1:]
	}
	return scheme + "://" + rest
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/blogem/petition-desk/database"
	"github.com/blogem/petition-desk/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := database.OpenSQLite(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func newTestEntry(afn, formType string, createdAt time.Time) *models.Entry {
	return &models.Entry{
		AFN:       afn,
		Year:      "2nd",
		Branch:    "CSE",
		Comment:   "line one\nline two",
		FormType:  formType,
		CreatedAt: createdAt,
	}
}

func TestSQLiteEntryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteEntryRepository(setupTestDB(t))
	base := time.Date(2025, 5, 1, 9, 0, 0, 123456789, time.UTC)

	// Test Create
	first := newTestEntry("AFN1", "petition", base)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	if first.ID == "" {
		t.Error("Expected entry ID to be set after creation")
	}

	second := newTestEntry("AFN2", "demand", base.Add(time.Second))
	third := newTestEntry("AFN3", "Petition", base.Add(2*time.Second))
	for _, entry := range []*models.Entry{second, third} {
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}
	if first.ID == second.ID {
		t.Error("Expected unique IDs")
	}

	// Test ForEachNewestFirst
	var listed []*models.Entry
	err := repo.ForEachNewestFirst(ctx, func(e *models.Entry) error {
		listed = append(listed, e)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to list entries: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(listed))
	}
	if listed[0].AFN != "AFN3" || listed[2].AFN != "AFN1" {
		t.Errorf("Expected newest first, got %s .. %s", listed[0].AFN, listed[2].AFN)
	}
	if !listed[2].CreatedAt.Equal(base) {
		t.Errorf("Expected timestamp %v to round trip, got %v", base, listed[2].CreatedAt)
	}
	if listed[2].Comment != "line one\nline two" {
		t.Errorf("Expected comment to keep newlines, got %q", listed[2].Comment)
	}

	// Test Count
	total, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	if total != 3 {
		t.Errorf("Expected count 3, got %d", total)
	}

	// Test CountByFormType is an exact, case-sensitive match
	petitions, err := repo.CountByFormType(ctx, models.FormTypePetition)
	if err != nil {
		t.Fatalf("Failed to count petitions: %v", err)
	}
	if petitions != 1 {
		t.Errorf("Expected 1 petition, got %d", petitions)
	}
}

func TestSQLiteForEachStopsOnCallbackError(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteEntryRepository(setupTestDB(t))
	for i := 0; i < 3; i++ {
		entry := newTestEntry("AFN", "demand", time.Now().Add(time.Duration(i)*time.Second))
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create entry: %v", err)
		}
	}

	stop := errors.New("stop")
	calls := 0
	err := repo.ForEachNewestFirst(ctx, func(*models.Entry) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Expected callback error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 callback, got %d", calls)
	}
}

func TestSQLiteMissingTimestamp(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	_, err := db.Exec(`INSERT INTO students (id, afn, year, branch, comment, form_type, created_at)
		VALUES ('legacy', 'A', '1', 'B', 'c', 'petition', NULL)`)
	if err != nil {
		t.Fatalf("Failed to insert legacy row: %v", err)
	}

	repo := NewSQLiteEntryRepository(db)
	err = repo.ForEachNewestFirst(ctx, func(e *models.Entry) error {
		if e.HasCreatedAt() {
			t.Errorf("Expected missing timestamp, got %v", e.CreatedAt)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to list entries: %v", err)
	}
}

func TestNewRepositories(t *testing.T) {
	repos := NewRepositories(database.NewSQLiteStore(setupTestDB(t)))
	if !repos.Available() {
		t.Fatal("Expected SQLite repositories to be available")
	}

	degraded := NewRepositories(database.Unavailable(database.BackendMongo))
	if degraded.Available() {
		t.Fatal("Expected unavailable repositories")
	}
	if err := degraded.Entries.Create(context.Background(), &models.Entry{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
	if _, err := degraded.Entries.Count(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestEntryDocumentConversion(t *testing.T) {
	oid := bson.NewObjectID()
	createdAt := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	doc := entryDocument{ID: oid, AFN: "A", FormType: "demand", CreatedAt: createdAt}
	entry := doc.toEntry()
	if entry.ID != oid.Hex() {
		t.Errorf("Expected hex ObjectID %s, got %s", oid.Hex(), entry.ID)
	}
	if !entry.CreatedAt.Equal(createdAt) {
		t.Errorf("Expected created_at %v, got %v", createdAt, entry.CreatedAt)
	}

	legacy := entryDocument{ID: "custom-key"}
	if got := legacy.toEntry(); got.ID != "custom-key" || got.HasCreatedAt() {
		t.Errorf("Unexpected legacy conversion: %+v", got)
	}

	if got := idString(int32(7)); got != "7" {
		t.Errorf("Expected numeric key rendered as 7, got %q", got)
	}

	stored := newEntryDocument(newTestEntry("A", "petition", createdAt))
	if stored.ID != nil {
		t.Errorf("Expected insert document without _id, got %v", stored.ID)
	}
}

func TestEntryDocumentBSONRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 2, 3, 4, 5, 6, 7000000, time.UTC)
	raw, err := bson.Marshal(newEntryDocument(newTestEntry("A", "petition", createdAt)))
	if err != nil {
		t.Fatalf("Failed to marshal document: %v", err)
	}

	var keys bson.M
	if err := bson.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("Failed to unmarshal document: %v", err)
	}
	if _, ok := keys["_id"]; ok {
		t.Error("Expected _id to be left to the server")
	}
	for _, field := range append([]string{"created_at"}, models.RequiredFields...) {
		if _, ok := keys[field]; !ok {
			t.Errorf("Expected stored field %s", field)
		}
	}
}

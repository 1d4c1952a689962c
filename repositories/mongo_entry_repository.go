package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/blogem/petition-desk/models"
)

// entryDocument is the stored shape of an entry. ID is left untyped so
// documents written by other tools with non-ObjectID keys still decode.
type entryDocument struct {
	ID        any       `bson:"_id,omitempty"`
	AFN       string    `bson:"afn"`
	Year      string    `bson:"year"`
	Branch    string    `bson:"branch"`
	Comment   string    `bson:"comment"`
	FormType  string    `bson:"form_type"`
	CreatedAt time.Time `bson:"created_at"`
}

// mongoEntryRepository implements EntryRepository on a Mongo collection
type mongoEntryRepository struct {
	collection *mongo.Collection
}

// NewMongoEntryRepository creates a new entry repository for MongoDB
func NewMongoEntryRepository(collection *mongo.Collection) EntryRepository {
	return &mongoEntryRepository{collection: collection}
}

// Create inserts a new entry
func (r *mongoEntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	// BSON dates carry millisecond precision
	entry.CreatedAt = entry.CreatedAt.UTC().Truncate(time.Millisecond)

	result, err := r.collection.InsertOne(ctx, newEntryDocument(entry))
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	entry.ID = idString(result.InsertedID)
	return nil
}

// ForEachNewestFirst streams entries ordered by created_at descending
func (r *mongoEntryRepository) ForEachNewestFirst(ctx context.Context, fn func(*models.Entry) error) error {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("failed to query entries: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc entryDocument
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("failed to decode entry: %w", err)
		}
		if err := fn(doc.toEntry()); err != nil {
			return err
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("error iterating entries: %w", err)
	}
	return nil
}

// Count returns the total number of entries
func (r *mongoEntryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// CountByFormType returns the number of entries with exactly this form type
func (r *mongoEntryRepository) CountByFormType(ctx context.Context, formType string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{{Key: "form_type", Value: formType}})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s entries: %w", formType, err)
	}
	return count, nil
}

func newEntryDocument(entry *models.Entry) entryDocument {
	return entryDocument{
		AFN:       entry.AFN,
		Year:      entry.Year,
		Branch:    entry.Branch,
		Comment:   entry.Comment,
		FormType:  entry.FormType,
		CreatedAt: entry.CreatedAt,
	}
}

func (d *entryDocument) toEntry() *models.Entry {
	entry := &models.Entry{
		ID:       idString(d.ID),
		AFN:      d.AFN,
		Year:     d.Year,
		Branch:   d.Branch,
		Comment:  d.Comment,
		FormType: d.FormType,
	}
	if !d.CreatedAt.IsZero() {
		entry.CreatedAt = d.CreatedAt.UTC()
	}
	return entry
}

// idString renders a document key the way clients see it
func idString(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Form types the counts endpoint buckets on. Other values are stored as-is.
const (
	FormTypePetition = "petition"
	FormTypeDemand   = "demand"
)

// TimestampLayout is used wherever created_at leaves the service
const TimestampLayout = time.RFC3339Nano

var errNullBody = errors.New("json: body is null, expected an object")

// RequiredFields lists the submission fields in validation order
var RequiredFields = []string{"afn", "year", "branch", "comment", "form_type"}

// Entry represents one stored petition or demand submission
type Entry struct {
	ID        string    `json:"_id" db:"id"`
	AFN       string    `json:"afn" db:"afn"`
	Year      string    `json:"year" db:"year"`
	Branch    string    `json:"branch" db:"branch"`
	Comment   string    `json:"comment" db:"comment"`
	FormType  string    `json:"form_type" db:"form_type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // zero when the stored document has none
}

// HasCreatedAt reports whether the entry carries a timestamp
func (e *Entry) HasCreatedAt() bool {
	return !e.CreatedAt.IsZero()
}

// CreatedAtISO returns created_at in UTC, or "" when absent
func (e *Entry) CreatedAtISO() string {
	if !e.HasCreatedAt() {
		return ""
	}
	return e.CreatedAt.UTC().Format(TimestampLayout)
}

// EntryForm holds the raw submission values as sent by the client.
// Field order is validation order.
type EntryForm struct {
	AFN      string `json:"afn" validate:"required"`
	Year     string `json:"year" validate:"required"`
	Branch   string `json:"branch" validate:"required"`
	Comment  string `json:"comment" validate:"required"`
	FormType string `json:"form_type" validate:"required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator reports fields by their JSON names
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ParseEntryForm decodes a JSON object body. Non-string scalars are kept
// as their JSON text; null counts as absent.
func ParseEntryForm(body []byte) (*EntryForm, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNullBody
	}

	values := make(map[string]string, len(RequiredFields))
	for _, field := range RequiredFields {
		value, err := rawToString(raw[field])
		if err != nil {
			return nil, err
		}
		values[field] = value
	}

	return &EntryForm{
		AFN:      values["afn"],
		Year:     values["year"],
		Branch:   values["branch"],
		Comment:  values["comment"],
		FormType: values["form_type"],
	}, nil
}

func rawToString(value json.RawMessage) (string, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return "", nil
	}
	if value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(value), nil
}

// MissingField returns the first required field that is empty after
// trimming, or "" when the form is complete.
func (f *EntryForm) MissingField() string {
	err := getValidator().Struct(f.trimmed())
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].Field()
	}
	return ""
}

func (f *EntryForm) trimmed() EntryForm {
	return EntryForm{
		AFN:      strings.TrimSpace(f.AFN),
		Year:     strings.TrimSpace(f.Year),
		Branch:   strings.TrimSpace(f.Branch),
		Comment:  strings.TrimSpace(f.Comment),
		FormType: strings.TrimSpace(f.FormType),
	}
}

// ToEntry builds the entry to insert with trimmed fields and the given
// creation time converted to UTC.
func (f *EntryForm) ToEntry(now time.Time) *Entry {
	form := f.trimmed()
	return &Entry{
		AFN:       form.AFN,
		Year:      form.Year,
		Branch:    form.Branch,
		Comment:   form.Comment,
		FormType:  form.FormType,
		CreatedAt: now.UTC(),
	}
}

package models

import (
	"testing"
	"time"
)

// Test that parsing keeps raw values and validation names the first gap
func TestEntryFormValidation(t *testing.T) {
	form, err := ParseEntryForm([]byte(`{"afn":"AFN1","year":"2nd","branch":"CSE","comment":"text","form_type":"petition"}`))
	if err != nil {
		t.Fatalf("Expected valid body to parse, got: %v", err)
	}
	if missing := form.MissingField(); missing != "" {
		t.Errorf("Expected complete form, got missing field %q", missing)
	}

	cases := []struct {
		body    string
		missing string
	}{
		{`{}`, "afn"},
		{`{"afn":"   ","year":"","branch":"","comment":"","form_type":""}`, "afn"},
		{`{"afn":"A","branch":"CSE","comment":"c","form_type":"demand"}`, "year"},
		{`{"afn":"A","year":"1","branch":"\t\n","comment":"c","form_type":"demand"}`, "branch"},
		{`{"afn":"A","year":"1","branch":"B","comment":null,"form_type":"demand"}`, "comment"},
		{`{"afn":"A","year":"1","branch":"B","comment":"c"}`, "form_type"},
		{`{"afn":"A","year":" ","branch":"","comment":"c","form_type":"x"}`, "year"},
	}
	for _, tc := range cases {
		form, err := ParseEntryForm([]byte(tc.body))
		if err != nil {
			t.Fatalf("Expected %s to parse, got: %v", tc.body, err)
		}
		if missing := form.MissingField(); missing != tc.missing {
			t.Errorf("Expected missing field %q for %s, got %q", tc.missing, tc.body, missing)
		}
	}
}

// Test that each blank field is reported by its JSON name, in declaration order
func TestEntryFormMissingFieldUsesJSONNames(t *testing.T) {
	for i, field := range RequiredFields {
		form := EntryForm{AFN: "A", Year: "1", Branch: "B", Comment: "c", FormType: "demand"}
		blank := []*string{&form.AFN, &form.Year, &form.Branch, &form.Comment, &form.FormType}
		for _, value := range blank[i:] {
			*value = " "
		}
		if missing := form.MissingField(); missing != field {
			t.Errorf("Expected missing field %q, got %q", field, missing)
		}
	}
}

// Test that bodies which are not JSON objects are rejected
func TestParseEntryFormRejectsInvalidBodies(t *testing.T) {
	invalid := []string{"", "not json", "[1,2,3]", "42", "null", `{"afn":`}
	for _, body := range invalid {
		if _, err := ParseEntryForm([]byte(body)); err == nil {
			t.Errorf("Expected %q to be rejected", body)
		}
	}
}

// Test that non-string scalars are accepted as their JSON text
func TestParseEntryFormStringifiesScalars(t *testing.T) {
	form, err := ParseEntryForm([]byte(`{"afn":12345,"year":2,"branch":"CSE","comment":true,"form_type":"demand"}`))
	if err != nil {
		t.Fatalf("Expected body to parse, got: %v", err)
	}
	if form.AFN != "12345" || form.Year != "2" || form.Comment != "true" {
		t.Errorf("Unexpected stringified values: %+v", form)
	}
}

// Test that ToEntry trims every field and stamps UTC time
func TestEntryFormToEntry(t *testing.T) {
	local := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 3, 1, 10, 30, 0, 0, local)

	form := &EntryForm{AFN: " AFN9 ", Year: " 3rd", Branch: "ECE ", Comment: "\n line one\nline two \n", FormType: " petition "}
	entry := form.ToEntry(now)

	if entry.AFN != "AFN9" || entry.Year != "3rd" || entry.Branch != "ECE" || entry.FormType != "petition" {
		t.Errorf("Expected trimmed fields, got %+v", entry)
	}
	if entry.Comment != "line one\nline two" {
		t.Errorf("Expected inner newlines kept, got %q", entry.Comment)
	}
	if entry.CreatedAt.Location() != time.UTC || !entry.CreatedAt.Equal(now) {
		t.Errorf("Expected UTC timestamp equal to now, got %v", entry.CreatedAt)
	}
	if entry.ID != "" {
		t.Errorf("Expected no ID before insert, got %q", entry.ID)
	}
}

// Test export row rendering
func TestEntryExportRow(t *testing.T) {
	entry := &Entry{
		ID:        "abc",
		AFN:       "AFN1",
		Year:      "1st",
		Branch:    "ME",
		Comment:   "first\r\nsecond\nthird",
		FormType:  "demand",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 600000000, time.UTC),
	}

	row := entry.ExportRow()
	if len(row) != len(ExportHeader) {
		t.Fatalf("Expected %d columns, got %d", len(ExportHeader), len(row))
	}
	if row[4] != "demand" {
		t.Errorf("Expected form_type in column 5, got %q", row[4])
	}
	if row[5] != `first  \n second \n third` {
		t.Errorf("Unexpected escaped comment: %q", row[5])
	}
	if row[6] != "2025-01-02T03:04:05.6Z" {
		t.Errorf("Unexpected timestamp: %q", row[6])
	}

	entry.CreatedAt = time.Time{}
	if got := entry.ExportRow()[6]; got != "" {
		t.Errorf("Expected empty timestamp for missing created_at, got %q", got)
	}
}

// Test JSON view rendering of missing timestamps
func TestNewEntryView(t *testing.T) {
	view := NewEntryView(&Entry{ID: "x", AFN: "A"})
	if view.CreatedAt != nil {
		t.Errorf("Expected nil created_at, got %v", *view.CreatedAt)
	}

	view = NewEntryView(&Entry{ID: "x", CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)})
	if view.CreatedAt == nil || *view.CreatedAt != "2025-01-02T03:04:05Z" {
		t.Errorf("Unexpected created_at: %v", view.CreatedAt)
	}
}

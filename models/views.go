package models

import "strings"

// EntryView is the JSON shape of an entry in API responses
type EntryView struct {
	ID        string  `json:"_id"`
	AFN       string  `json:"afn"`
	Year      string  `json:"year"`
	Branch    string  `json:"branch"`
	Comment   string  `json:"comment"`
	FormType  string  `json:"form_type"`
	CreatedAt *string `json:"created_at"`
}

// NewEntryView converts an entry for JSON output
func NewEntryView(e *Entry) EntryView {
	view := EntryView{
		ID:       e.ID,
		AFN:      e.AFN,
		Year:     e.Year,
		Branch:   e.Branch,
		Comment:  e.Comment,
		FormType: e.FormType,
	}
	if e.HasCreatedAt() {
		createdAt := e.CreatedAtISO()
		view.CreatedAt = &createdAt
	}
	return view
}

// Counts is the result of the aggregate counts operation
type Counts struct {
	Total     int64 `json:"total"`
	Petitions int64 `json:"petitions"`
	Demands   int64 `json:"demands"`
}

// ExportHeader is the fixed header row of the admin exports
var ExportHeader = []string{"id", "afn", "year", "branch", "form_type", "comment", "created_at_utc_iso"}

var commentEscaper = strings.NewReplacer("\r", " ", "\n", ` \n `)

// ExportRow renders the entry as one export row in ExportHeader order.
// Embedded line breaks in the comment are flattened so every entry stays on
// a single line.
func (e *Entry) ExportRow() []string {
	return []string{
		e.ID,
		e.AFN,
		e.Year,
		e.Branch,
		e.FormType,
		EscapeComment(e.Comment),
		e.CreatedAtISO(),
	}
}

// EscapeComment replaces carriage returns with a space and newlines with
// a literal " \n ".
func EscapeComment(comment string) string {
	return commentEscaper.Replace(comment)
}

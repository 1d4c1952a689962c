package controllers

import (
	"io"
	"net/http"

	"github.com/blogem/petition-desk/apperrors"
	"github.com/blogem/petition-desk/models"
	"github.com/blogem/petition-desk/services"
)

// EntryController handles the public JSON API
type EntryController struct {
	services *services.Services
}

// NewEntryController creates a new entry controller
func NewEntryController(services *services.Services) *EntryController {
	return &EntryController{
		services: services,
	}
}

type submitResponse struct {
	Success bool             `json:"success"`
	Entry   models.EntryView `json:"entry"`
}

type recordsResponse struct {
	Success bool               `json:"success"`
	Records []models.EntryView `json:"records"`
}

type countsResponse struct {
	Success bool `json:"success"`
	models.Counts
}

// Submit handles POST /api/submit. Availability is checked before the
// body is even read.
func (c *EntryController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Entries.Ready(); err != nil {
		RespondWithError(w, r, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		RespondWithError(w, r, apperrors.InvalidJSONBody(err))
		return
	}

	form, err := models.ParseEntryForm(body)
	if err != nil {
		RespondWithError(w, r, apperrors.InvalidJSONBody(err))
		return
	}

	entry, err := c.services.Entries.Submit(r.Context(), form)
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	RespondWithJson(w, http.StatusCreated, submitResponse{Success: true, Entry: models.NewEntryView(entry)})
}

// Records handles GET /api/records
func (c *EntryController) Records(w http.ResponseWriter, r *http.Request) {
	records, err := c.services.Entries.ListRecords(r.Context())
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	RespondWithJson(w, http.StatusOK, recordsResponse{Success: true, Records: records})
}

// Counts handles GET /api/counts
func (c *EntryController) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := c.services.Entries.GetCounts(r.Context())
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	RespondWithJson(w, http.StatusOK, countsResponse{Success: true, Counts: *counts})
}

package controllers

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/petition-desk/services"
)

// renderTemplate renders a page inside the shared layout
func renderTemplate(w http.ResponseWriter, pages fs.FS, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, pages, pageTemplate, data)
}

// renderTemplateWithStatus renders a page inside the shared layout with the provided status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, pages fs.FS, pageTemplate string, data interface{}) error {
	tmpl := template.New(pageTemplate)

	// Parse layout, the shared entry form and the page template
	_, err := tmpl.ParseFS(pages, "layout.html", "form.html", pageTemplate)
	if err != nil {
		log.WithError(err).WithField("template", pageTemplate).Error("Failed to parse template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return err
	}

	// Render into a buffer so a failing template never sends half a page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.WithError(err).WithField("template", pageTemplate).Error("Failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	return err
}

// Controllers holds all controller instances
type Controllers struct {
	Pages   *PageController
	Entries *EntryController
	Export  *ExportController
	Health  *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, pages fs.FS) *Controllers {
	return &Controllers{
		Pages:   NewPageController(pages),
		Entries: NewEntryController(services),
		Export:  NewExportController(services),
		Health:  NewHealthController(services),
	}
}

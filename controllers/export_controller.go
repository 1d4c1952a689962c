package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/blogem/petition-desk/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController serves the admin downloads. Authorization is done by
// the admin key middleware mounted in front of it.
type ExportController struct {
	services *services.Services
}

// NewExportController creates a new export controller
func NewExportController(services *services.Services) *ExportController {
	return &ExportController{
		services: services,
	}
}

// CSV handles GET /admin/export.csv
func (c *ExportController) CSV(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Export.ExportCSV(r.Context())
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	writeAttachment(w, "text/csv; charset=utf-8", services.ExportCSVFilename, data)
}

// XLSX handles GET /admin/export.xlsx
func (c *ExportController) XLSX(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Export.ExportXLSX(r.Context())
	if err != nil {
		RespondWithError(w, r, err)
		return
	}

	writeAttachment(w, xlsxContentType, services.ExportXLSXFilename, data)
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

package controllers

import (
	"io/fs"
	"net/http"

	"github.com/blogem/petition-desk/models"
)

// PageController serves the three public HTML pages
type PageController struct {
	pages fs.FS
}

// NewPageController creates a new page controller
func NewPageController(pages fs.FS) *PageController {
	return &PageController{pages: pages}
}

// Index handles GET /
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, c.pages, "index.html", models.NewPageData("Student Petitions", "index", ""))
}

// Petition handles GET /petition
func (c *PageController) Petition(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, c.pages, "petition.html", models.NewPageData("File a Petition", "petition", models.FormTypePetition))
}

// Demand handles GET /demand
func (c *PageController) Demand(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, c.pages, "demand.html", models.NewPageData("Submit a Demand", "demand", models.FormTypeDemand))
}

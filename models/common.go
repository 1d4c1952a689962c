package models

// PageData represents common data passed to templates
type PageData struct {
	Title       string `json:"title"`
	CurrentPage string `json:"current_page"`
	FormType    string `json:"form_type,omitempty"`
	SubmitURL   string `json:"submit_url"`
}

// NewPageData builds the template data for one of the public pages
func NewPageData(title, currentPage, formType string) PageData {
	return PageData{
		Title:       title,
		CurrentPage: currentPage,
		FormType:    formType,
		SubmitURL:   "/api/submit",
	}
}

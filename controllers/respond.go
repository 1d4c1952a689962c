package controllers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/petition-desk/apperrors"
)

// RespondWithError logs the failure with its cause and writes the client
// safe envelope for its kind.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.From(err)

	entry := log.WithFields(log.Fields{
		"endpoint": r.Method + " " + r.URL.Path,
		"kind":     appErr.Kind.String(),
	})
	if appErr.Err != nil {
		entry = entry.WithError(appErr.Err)
	}

	switch appErr.Kind {
	case apperrors.KindInternal, apperrors.KindServiceUnavailable:
		entry.Error(appErr.Message)
	default:
		entry.Warn(appErr.Message)
	}

	RespondWithJson(w, appErr.Kind.Status(), appErr.Response())
}

// RespondWithJson writes payload as JSON with the given status code
func RespondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("Failed to encode response")
		code = http.StatusInternalServerError
		response = []byte(`{"success":false,"error":"Internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

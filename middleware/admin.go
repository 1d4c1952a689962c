package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/petition-desk/apperrors"
)

const (
	AdminKeyHeader = "X-ADMIN-KEY"
	AdminKeyParam  = "admin_key"
)

// RequireAdminKey rejects requests that do not carry the configured admin
// secret. An empty secret rejects everything. The check runs before any
// handler touches persistence.
func RequireAdminKey(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isAuthorized(r, adminKey) {
				log.WithFields(log.Fields{
					"path": r.URL.Path,
					"ip":   getIPAddress(r),
				}).Warn("Rejected admin request")

				appErr := apperrors.Unauthorized()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(appErr.Kind.Status())
				json.NewEncoder(w).Encode(appErr.Response())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isAuthorized checks the X-ADMIN-KEY header first, then the admin_key
// query parameter. Query strings may end up in proxy logs, so the header
// is the preferred transport.
func isAuthorized(r *http.Request, adminKey string) bool {
	if adminKey == "" {
		return false
	}

	if headerKey := r.Header.Get(AdminKeyHeader); headerKey != "" && keysEqual(headerKey, adminKey) {
		return true
	}

	if paramKey := r.URL.Query().Get(AdminKeyParam); paramKey != "" && keysEqual(paramKey, adminKey) {
		return true
	}

	return false
}

func keysEqual(given, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}

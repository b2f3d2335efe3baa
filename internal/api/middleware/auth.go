package middleware

import (
	"net/http"

	"github.com/Aryan-Wadhawan/masaje-app/internal/api/handlers"
)

// StaffIDHeader identifies the staff member on administrative routes.
// Verification of the value is the gateway's job; here only presence is
// required.
const StaffIDHeader = "X-Staff-ID"

type Logger interface {
	Warn(format string, v ...interface{})
}

// StaffAuth rejects requests without the staff header.
func StaffAuth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(StaffIDHeader) == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, StaffIDHeader)
				handlers.RespondError(w, http.StatusUnauthorized, "staff authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

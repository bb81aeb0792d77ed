package access

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hotel-management/internal/auth"
)

// PageAccess wraps the gate as route middleware for protected screens.
type PageAccess struct {
	gate   *Gate
	logger *slog.Logger
}

func NewPageAccess(gate *Gate, logger *slog.Logger) *PageAccess {
	return &PageAccess{
		gate:   gate,
		logger: logger,
	}
}

// RequirePage blocks the request unless the session user passes the gate for
// pageID. Missing user resolves to 401 (session unknown), a gate denial to a
// fixed 403 body.
func (pa *PageAccess) RequirePage(pageID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.UserFromContext(r.Context())
			if !ok || user == nil {
				pa.logger.Warn("page access check skipped: user not found in context", "page_id", pageID)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !pa.gate.CanAccess(user, pageID) {
				pa.logger.Warn("access denied",
					"user_id", user.ID,
					"page_id", pageID,
					"roles", user.Roles)
				http.Error(w, "Access Denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

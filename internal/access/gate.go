package access

import (
	"log/slog"
	"strings"

	"github.com/frahmantamala/hotel-management/internal/auth"
)

// adminEquivalentRoles always pass the gate regardless of page.
var adminEquivalentRoles = []string{"admin", "administrator", "superadmin"}

// Gate decides whether a user may view a page. It is a pure decision
// procedure: no side effects, and it never panics outward. Both fallback
// paths deliberately resolve to allow (unknown page, internal error) to avoid
// locking operators out of screens; denials are the policy's job, not the
// error handling's.
type Gate struct {
	policy Policy
	logger *slog.Logger
}

func NewGate(policy Policy, logger *slog.Logger) *Gate {
	if policy == nil {
		policy = DefaultPolicy()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{
		policy: policy,
		logger: logger,
	}
}

// NormalizeRoles flattens the inconsistent upstream role shapes into a clean
// slice: a single comma-separated element is split, every element is trimmed,
// and empty entries are dropped.
func NormalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, raw := range roles {
		if strings.Contains(raw, ",") {
			for _, part := range strings.Split(raw, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
			continue
		}
		if raw = strings.TrimSpace(raw); raw != "" {
			out = append(out, raw)
		}
	}
	return out
}

// CanAccess reports whether user may view pageID.
//
// A nil user means the session has not resolved yet; callers must treat that
// as "don't know" and defer rendering, so the middleware answers 401 rather
// than 403 for it.
func (g *Gate) CanAccess(user *auth.User, pageID string) (allowed bool) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("access gate recovered from internal error, defaulting to allow",
				"page_id", pageID, "error", r)
			allowed = true
		}
	}()

	if user == nil {
		return false
	}

	roles := NormalizeRoles(user.Roles)

	for _, role := range roles {
		if isAdminEquivalent(role) {
			return true
		}
	}

	permitted, known := g.policy[pageID]
	if !known {
		g.logger.Warn("access gate: unmapped page, defaulting to allow", "page_id", pageID)
		return true
	}

	for _, role := range roles {
		for _, p := range permitted {
			if strings.EqualFold(role, p) {
				return true
			}
		}
	}

	return false
}

func isAdminEquivalent(role string) bool {
	for _, admin := range adminEquivalentRoles {
		if strings.EqualFold(role, admin) {
			return true
		}
	}
	return false
}

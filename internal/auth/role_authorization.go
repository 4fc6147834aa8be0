package auth

import (
	"log/slog"
	"net/http"
)

// RoleAuthorization gates routes on the caller's role. Team-membership
// gating for request transitions lives in the request service, not here.
type RoleAuthorization struct {
	logger *slog.Logger
}

func NewRoleAuthorization(logger *slog.Logger) *RoleAuthorization {
	return &RoleAuthorization{logger: logger}
}

func (ra *RoleAuthorization) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !user.HasRole(roles...) {
				ra.logger.WarnContext(r.Context(), "access denied: insufficient role",
					"user_id", user.ID,
					"user_role", user.Role,
					"required_roles", roles)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAssetManager guards team and equipment mutations.
func (ra *RoleAuthorization) RequireAssetManager() func(http.Handler) http.Handler {
	return ra.RequireRole(RoleAdmin, RoleManager)
}

func (ra *RoleAuthorization) RequireAdmin() func(http.Handler) http.Handler {
	return ra.RequireRole(RoleAdmin)
}

package middleware

import (
	"net/http"

	"vetclinic-backoffice/internal/domain/entity"
	"vetclinic-backoffice/pkg/response"
)

// RequireRole checks that the authenticated user's role is one of the
// allowed roles. Role is read from context, set by AuthMiddleware.
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowed := range allowedRoleIDs {
				if roleID == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin gates admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireDoctor gates doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor)(next)
}

// RequireStaff gates endpoints for any clinic staff member
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDModerator, entity.RoleIDDoctor, entity.RoleIDNurse)(next)
}

// RequireModeratorOrAdmin gates the front-desk endpoints
func RequireModeratorOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDModerator)(next)
}

// RequireDoctorOrNurse gates the care-team endpoints
func RequireDoctorOrNurse(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor, entity.RoleIDNurse)(next)
}

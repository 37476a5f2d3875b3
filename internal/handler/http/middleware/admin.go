package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/auth"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/handler/http/response"
)

// AdminOnly lets through tokens whose role claim is admin. Anggota accounts use the
// member app and get 403 here.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || !user.Role(role).Valid() {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if user.Role(role) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/JosephChoi/abcbond-api/utils"
)

// AuthedHandler is a handler that receives the verified caller identity as an
// explicit argument. Handlers never fish the identity out of the request
// context.
type AuthedHandler func(w http.ResponseWriter, r *http.Request, identity utils.Identity)

// RequireAuth validates the bearer token and invokes h with the decoded
// identity. Missing, malformed, expired or tampered tokens are rejected
// with 401.
func RequireAuth(h AuthedHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIError{
				Error:   "Authentication Failed",
				Message: "Authorization token required",
			})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		identity, err := utils.VerifyToken(tokenStr)
		if err != nil {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIError{
				Error:   "Authentication Failed",
				Message: "Invalid or expired token",
			})
			return
		}
		h(w, r, *identity)
	})
}

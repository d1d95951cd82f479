package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/GlebRadaev/topups/pkg/utils"
)

const InternalAuthHeader = "X-Internal-Auth"

// InternalAuth lets through only requests carrying the shared secret.
// An empty secret rejects everything.
func InternalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Authorized(secret, r.Header.Get(InternalAuthHeader)) {
				utils.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func Authorized(secret, presented string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) == 1
}

package auth

import (
	"net/http"
	"os"
	"strings"
)

// OpsAuthMiddleware guards the operational endpoints with a static service
// token. End-user authentication lives in the external auth service and never
// reaches this process.
func OpsAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		opsToken := os.Getenv("OPS_TOKEN")
		token := r.Header.Get("Authorization")
		if opsToken == "" || !strings.HasPrefix(token, "Bearer ") || strings.TrimPrefix(token, "Bearer ") != opsToken {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

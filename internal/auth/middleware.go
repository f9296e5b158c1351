// Package auth provides HTTP middleware for bearer token authentication of
// the MCP endpoint.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware returns middleware that requires
//
//	Authorization: Bearer <token>
//
// on every request. The prefix is case-sensitive and followed by exactly one
// space. An empty token disables authentication. Rejected requests get a 401
// with a WWW-Authenticate challenge and are logged at warn level when log is
// non-nil.
func NewAuthMiddleware(token string, log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		want := []byte(token)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			provided, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || provided == "" || subtle.ConstantTimeCompare([]byte(provided), want) != 1 {
				if log != nil {
					log.WithFields(logrus.Fields{
						"remote": r.RemoteAddr,
						"path":   r.URL.Path,
						"scheme": ok,
					}).Warn("rejected unauthenticated request")
				}
				w.Header().Set("WWW-Authenticate", `Bearer realm="jianshu-mcp"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/coursetrack-backend/internal/config"
)

// exposedHeaders are readable by browser clients: the request id for support
// tickets and Retry-After on 503.
var exposedHeaders = strings.Join([]string{RequestIDHeader, "Retry-After"}, ", ")

// CORS answers preflight requests itself and decorates every other response
// whose Origin is in the allow list. The matched origin is echoed back, never
// "*", so credentialed requests keep working with a wildcard list.
func CORS(cfg config.CORSConfig) Middleware {
	origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				w.Header().Add("Vary", "Origin")
			}
			if origin != "" && origins.allows(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originList struct {
	any   bool
	exact map[string]struct{}
}

func parseOrigins(raw string) originList {
	list := originList{exact: make(map[string]struct{})}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			list.any = true
		default:
			list.exact[o] = struct{}{}
		}
	}
	return list
}

func (l originList) allows(origin string) bool {
	if l.any {
		return true
	}
	_, ok := l.exact[origin]
	return ok
}

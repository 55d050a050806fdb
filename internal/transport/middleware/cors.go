package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/gamecatalog-backend/internal/config"
)

// CORS answers cross-origin requests from the configured origins and the
// Telegram WebApp origins. Preflights are answered here and never reach
// the router; a preflight from an unknown origin gets a bare 204 that the
// browser will reject.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := parseOrigins(cfg.AllowedOrigins + "," + cfg.WebAppOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			ok := allowed.match(origin)
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				if cfg.ExposedHeaders != "" {
					h.Set("Access-Control-Expose-Headers", cfg.ExposedHeaders)
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if ok {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originPattern struct {
	prefix, suffix string
}

type originSet struct {
	any      bool
	exact    map[string]struct{}
	patterns []originPattern
}

// parseOrigins reads a comma separated origin list. "*" allows every
// origin; "https://*.example.org" allows every subdomain of example.org.
func parseOrigins(list string) originSet {
	set := originSet{exact: make(map[string]struct{})}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch {
		case o == "":
		case o == "*":
			set.any = true
		case strings.Contains(o, "://*."):
			prefix, suffix, _ := strings.Cut(o, "*")
			set.patterns = append(set.patterns, originPattern{prefix: prefix, suffix: suffix})
		default:
			set.exact[o] = struct{}{}
		}
	}
	return set
}

func (s originSet) match(origin string) bool {
	if s.any {
		return true
	}
	if _, ok := s.exact[origin]; ok {
		return true
	}
	for _, p := range s.patterns {
		if len(origin) <= len(p.prefix)+len(p.suffix) ||
			!strings.HasPrefix(origin, p.prefix) || !strings.HasSuffix(origin, p.suffix) {
			continue
		}
		if sub := origin[len(p.prefix) : len(origin)-len(p.suffix)]; !strings.ContainsAny(sub, "/:@") {
			return true
		}
	}
	return false
}

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/Lixing-Zhang/dynamic-pricing/internal/config"
)

// APIKeyHeader carries the caller's API key
const APIKeyHeader = "api_key"

// APIKeyAuth rejects requests without a configured API key:
// 401 when the header is missing, 403 when the key is unknown.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	keys := make(map[string]struct{}, len(cfg.APIKeys))
	for _, k := range cfg.APIKeys {
		keys[k] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)

			if apiKey == "" {
				deny(w, http.StatusUnauthorized, "API key required")
				return
			}

			if _, ok := keys[apiKey]; !ok {
				deny(w, http.StatusForbidden, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

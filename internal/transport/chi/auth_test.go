package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	for name, keys := range map[string][]string{"nil": nil, "blank": {"", ""}} {
		t.Run(name, func(t *testing.T) {
			handler := BearerAuthMiddleware(keys)(okHandler())

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest("GET", "/tutors", http.NoBody))

			if rr.Code != http.StatusOK {
				t.Errorf("got %d, want %d", rr.Code, http.StatusOK)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	handler := BearerAuthMiddleware([]string{"key1", "key2"})(okHandler())

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"missing header", "/tutors", "", http.StatusUnauthorized},
		{"basic scheme", "/tutors", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"invalid token", "/tutors", "Bearer wrong-key", http.StatusUnauthorized},
		{"prefix of valid token", "/tutors", "Bearer key", http.StatusUnauthorized},
		{"first key", "/tutors", "Bearer key1", http.StatusOK},
		{"second key", "/subjects", "Bearer key2", http.StatusOK},
		{"health exempt", "/health", "", http.StatusOK},
		{"metrics exempt", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Fatalf("got %d, want %d", rr.Code, tt.want)
			}
			if tt.want != http.StatusUnauthorized {
				return
			}
			var errResp ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if errResp.Code != ErrorCodeUnauthorized {
				t.Errorf("error code: got %s, want %s", errResp.Code, ErrorCodeUnauthorized)
			}
		})
	}
}

package chi

import (
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kailas-cloud/tutordex/internal/metrics"
)

// NewRouter mounts the API routes behind the standard middleware chain:
// recoverer, request id, access log, bearer auth, request metrics.
func NewRouter(s *Server, apiKeys []string) http.Handler {
	r := gochi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Get("/subjects", s.ListSubjects)
	r.Route("/tutors", func(r gochi.Router) {
		r.Get("/", s.ListTutors)
		r.Get("/filters", s.GetFilterOptions)
		r.Get("/{id}", s.GetTutor)
	})

	return r
}

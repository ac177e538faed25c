package chi

import (
	"net/http"
	"strconv"
	"strings"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/tutordex/internal/domain"
	"github.com/kailas-cloud/tutordex/internal/domain/search/criteria"
	directoryuc "github.com/kailas-cloud/tutordex/internal/usecase/directory"
	exploreuc "github.com/kailas-cloud/tutordex/internal/usecase/explore"
	healthuc "github.com/kailas-cloud/tutordex/internal/usecase/health"
)

// Server serves the explore and directory screens over HTTP.
type Server struct {
	directory     *directoryuc.Service
	explore       *exploreuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	directory *directoryuc.Service,
	explore *exploreuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		directory: directory,
		explore:   explore,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sourceUnavailableHandler,
		sentinelHandler(domain.ErrTutorNotFound, http.StatusNotFound, ErrorCodeTutorNotFound),
		sentinelHandler(domain.ErrInvalidCriteria, http.StatusBadRequest, ErrorCodeValidationFailed),
	}
	return s
}

// ListSubjects handles GET /subjects.
func (s *Server) ListSubjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	items := subjectsToItems(s.explore.Search(q))

	writeJSON(w, http.StatusOK, SubjectListResponse{
		Query: q,
		Items: items,
		Total: len(items),
	})
}

// ListTutors handles GET /tutors.
func (s *Server) ListTutors(w http.ResponseWriter, r *http.Request) {
	c, ok := s.criteriaFromQuery(w, r)
	if !ok {
		return
	}

	tutors, err := s.directory.Search(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := tutorsToItems(tutors)
	writeJSON(w, http.StatusOK, TutorListResponse{Items: items, Total: len(items)})
}

// GetTutor handles GET /tutors/{id}.
func (s *Server) GetTutor(w http.ResponseWriter, r *http.Request) {
	id := gochi.URLParam(r, "id")
	if strings.TrimSpace(id) == "" {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "tutor id is required")
		return
	}

	t, err := s.directory.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tutorToItem(t))
}

// GetFilterOptions handles GET /tutors/filters.
func (s *Server) GetFilterOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, filterOptionsToResponse(s.directory.FilterOptions()))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// criteriaFromQuery reads q, subject (repeatable) and min_rating. An empty min_rating means no threshold.
func (s *Server) criteriaFromQuery(w http.ResponseWriter, r *http.Request) (criteria.Criteria, bool) {
	query := r.URL.Query()

	var minRating *float64
	if raw := strings.TrimSpace(query.Get("min_rating")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "min_rating must be a number")
			return criteria.Criteria{}, false
		}
		minRating = &v
	}

	c, err := criteria.New(query.Get("q"), query["subject"], minRating)
	if err != nil {
		s.handleDomainError(w, err)
		return criteria.Criteria{}, false
	}
	return c, true
}

package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the data source is unreachable; explore keeps working, the directory serves empty pages.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// ComponentDatabase is the check name of the tutor document store.
const ComponentDatabase = "database"

const defaultTimeout = 2 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      Pinger
	timeout time.Duration
}

// New creates a Service.
func New(db Pinger) *Service {
	return &Service{db: db, timeout: defaultTimeout}
}

// Check pings the store, bounded by the service timeout.
func (s *Service) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	checks := map[string]CheckResult{ComponentDatabase: CheckOK}
	status := Healthy
	if err := s.db.Ping(ctx); err != nil {
		checks[ComponentDatabase] = CheckError
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}

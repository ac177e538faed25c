package explore

import (
	"github.com/kailas-cloud/tutordex/internal/domain/search/filter"
	"github.com/kailas-cloud/tutordex/internal/domain/subject"
	"github.com/kailas-cloud/tutordex/internal/metrics"
)

const screenExplore = "explore"

// Service searches the explore catalog. The catalog is static, so there is no data source.
type Service struct {
	catalog []subject.Subject
}

// New creates an explore service over catalog. An empty catalog falls back to subject.DefaultCatalog.
func New(catalog []subject.Subject) *Service {
	if len(catalog) == 0 {
		catalog = subject.DefaultCatalog()
	}
	return &Service{catalog: clone(catalog)}
}

// Catalog returns a copy of the full catalog.
func (s *Service) Catalog() []subject.Subject {
	return clone(s.catalog)
}

// Search returns the catalog entries matching term by prefix-word match.
// An empty term returns the whole catalog.
func (s *Service) Search(term string) []subject.Subject {
	results := filter.Explore(s.catalog, term)
	metrics.FilterResults.WithLabelValues(screenExplore).Observe(float64(len(results)))
	return results
}

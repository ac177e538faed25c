package tutordex

import "time"

// Subjects returns the catalog entries matching term by title prefix or description word prefix.
// An empty term returns the whole catalog.
func (c *Client) Subjects(term string) []Subject {
	start := time.Now()
	defer c.obs.observe("subjects", start, nil)

	return fromDomainSubjects(c.exploreSvc.Search(term))
}

// Catalog returns the configured explore catalog.
func (c *Client) Catalog() []Subject {
	return fromDomainSubjects(c.exploreSvc.Catalog())
}

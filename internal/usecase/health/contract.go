package health

import "context"

// Pinger checks availability of the tutor data source.
type Pinger interface {
	Ping(ctx context.Context) error
}

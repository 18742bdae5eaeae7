package provider

import (
	"context"

	"github.com/poiesic/kotoba/core"
)

// Provider is a single data source producing one attribute of an enriched
// record. A provider may be backed by a remote call, a local computation, or
// an offline lookup table; callers must not assume which.
// Implementations must be thread-safe for concurrent use.
type Provider interface {
	// Name returns the stable provider name. It keys cache entries and
	// record results, so it must never change for a given source.
	Name() string

	// Remote reports whether Fetch leaves the process. Remote providers are
	// subject to rate limiting and are skipped entirely in offline mode.
	Remote() bool

	// Fetch produces the provider's payload for one item.
	// Expected absence of data is ErrNotFound, a permanent outcome.
	// Failures that may succeed on retry (network errors, throttling) are
	// wrapped with MarkTransient. Fetch never aborts the run: every error it
	// returns becomes an Unavailable entry in the item's record.
	Fetch(ctx context.Context, item core.VocabItem) (*core.Payload, error)
}

package generation

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is a configuration error: the service cannot start the
// assistant without a credential. Request-time failures are reported as
// regular generation errors instead.
var ErrMissingAPIKey = errors.New("generation API key is not configured")

// TextGenerator is the capability the query planner depends on. Keeping the
// external call behind this interface makes retrieval and ranking testable
// without network access.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

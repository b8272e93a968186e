package oracle

import "context"

// Client is a single generative-text backend. Generate returns the raw
// response text; an empty response is reported as common.ErrEmptyResponse.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

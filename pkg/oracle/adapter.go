package oracle

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skynet2/sms-transaction-importer/pkg/extractor"
)

// Adapter runs the primary/secondary fallback: each client gets the full
// retry budget before the next one is consulted. Exhausting every client
// is not an error; the caller just keeps whatever the rule-based layer
// produced.
type Adapter struct {
	limiter        *RateLimiter
	policy         RetryPolicy
	requestTimeout time.Duration
	clients        []Client
}

func NewAdapter(
	limiter *RateLimiter,
	policy RetryPolicy,
	requestTimeout time.Duration,
	clients ...Client,
) *Adapter {
	return &Adapter{
		limiter:        limiter,
		policy:         policy,
		requestTimeout: requestTimeout,
		clients:        clients,
	}
}

// Extract consults the oracles for a message the deterministic layer
// could not fully handle. The returned name identifies the client that
// supplied the response, "" when every client was exhausted.
func (a *Adapter) Extract(
	ctx context.Context,
	body string,
	address string,
) (extractor.Fields, string) {
	prompt := BuildPrompt(body, address)

	for _, cl := range a.clients {
		text, err := a.tryClient(ctx, cl, prompt)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).
				Str("oracle", cl.Name()).
				Msg("oracle exhausted retries, falling back")

			continue
		}

		fields, parseErr := ParseResponse(ctx, text)
		if parseErr != nil {
			// a formatting bug replays identically on retry, so give up
			// on this response instead of burning more attempts
			zerolog.Ctx(ctx).Warn().Err(parseErr).
				Str("oracle", cl.Name()).
				Msg("malformed oracle response")

			return extractor.Fields{}, cl.Name()
		}

		return fields, cl.Name()
	}

	return extractor.Fields{}, ""
}

func (a *Adapter) tryClient(
	ctx context.Context,
	cl Client,
	prompt string,
) (string, error) {
	var lastErr error

	for attempt := 0; attempt < a.policy.MaxAttempts; attempt++ {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", err
		}

		text, err := a.generate(ctx, cl, prompt)
		if err == nil {
			return text, nil
		}

		lastErr = err

		zerolog.Ctx(ctx).Warn().Err(err).
			Str("oracle", cl.Name()).
			Int("attempt", attempt+1).
			Msg("oracle call failed")

		if ClassifyError(err) == KindRateLimited && attempt < a.policy.MaxAttempts-1 {
			if err = sleepContext(ctx, a.policy.Backoff(attempt)); err != nil {
				return "", err
			}
		}
	}

	return "", lastErr
}

func (a *Adapter) generate(
	ctx context.Context,
	cl Client,
	prompt string,
) (string, error) {
	if a.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.requestTimeout)
		defer cancel()
	}

	return cl.Generate(ctx, prompt)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

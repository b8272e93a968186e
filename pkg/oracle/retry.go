package oracle

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/sms-transaction-importer/pkg/common"
)

type ErrorKind int

const (
	KindOther       = ErrorKind(0)
	KindEmpty       = ErrorKind(1)
	KindRateLimited = ErrorKind(2)
)

// RetryPolicy owns the attempt ceiling and the exponential backoff
// schedule applied to rate-limited failures.
type RetryPolicy struct {
	MaxAttempts int
	BackoffBase time.Duration
}

// Backoff returns the sleep before the next attempt. attempt is zero-based.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	return p.BackoffBase * (1 << attempt)
}

// ClassifyError buckets an oracle failure. Providers report quota errors
// inconsistently, so besides the typed sentinels we fall back to the
// keyword sniffing the providers' SDKs force on everyone.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindOther
	}

	if errors.Is(err, common.ErrEmptyResponse) {
		return KindEmpty
	}

	if errors.Is(err, common.ErrRateLimited) {
		return KindRateLimited
	}

	lower := strings.ToLower(err.Error())
	for _, keyword := range []string{"quota", "rate", "limit", "exceeded"} {
		if strings.Contains(lower, keyword) {
			return KindRateLimited
		}
	}

	return KindOther
}

package common

import "github.com/cockroachdb/errors"

var (
	ErrEmptyResponse = errors.New("empty oracle response")
	ErrRateLimited   = errors.New("oracle rate limited")
)

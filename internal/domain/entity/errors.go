package entity

import "errors"

// Standard domain errors
var (
	ErrInvalidRequest    = errors.New("request text must be a non-empty string")
	ErrRateLimitExceeded = errors.New("rate limit exceeded: too many requests")
	ErrMissingCredential = errors.New("required credential is not configured")
	ErrNoImageData       = errors.New("no image data returned from the image model")
)

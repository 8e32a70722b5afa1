package github

import (
	"errors"
	"fmt"
)

// Client error sentinels.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned for any non-2xx response other than 404.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}

package exa

import "fmt"

type ErrInvalidConfig struct {
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid client configuration: %s", e.Reason)
}

// ErrStatus reports a non-200 answer from the search service. The body is
// carried verbatim so callers can see the remote diagnostic.
type ErrStatus struct {
	StatusCode int
	Body       string
}

func (e ErrStatus) Error() string {
	return fmt.Sprintf("(HTTP Error %d) %s", e.StatusCode, e.Body)
}

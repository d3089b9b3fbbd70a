package client

import "fmt"

// UpstreamError is a non-success HTTP status from an external service.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s service returned status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s service returned status %d: %s", e.Service, e.StatusCode, e.Body)
}

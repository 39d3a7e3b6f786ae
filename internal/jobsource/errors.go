package jobsource

import "fmt"

// FetchError aggregates any provider failure: network errors, timeouts,
// non-success statuses and undecodable responses.
type FetchError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

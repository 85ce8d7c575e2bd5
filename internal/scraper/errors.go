package scraper

import "fmt"

// TimeoutError means the outbound request exceeded the configured fetch timeout.
type TimeoutError struct {
	URL string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out fetching %s: %v", e.URL, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// UpstreamStatusError means the target server answered with a non-2xx status
// after redirects were followed.
type UpstreamStatusError struct {
	URL        string
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d for %s", e.StatusCode, e.URL)
}

// TransportError covers every other network-layer fault: DNS failure,
// connection refused, TLS errors, truncated reads.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch URL %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

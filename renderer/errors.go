package renderer

import "fmt"

// NetworkError reports that the content request could not complete.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("renderer: content request failed: %v", e.Err)
	}
	return fmt.Sprintf("renderer: content request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// BadResponseError reports a completed request whose response was unusable:
// a non-2xx status or a body that is not a content document.
type BadResponseError struct {
	StatusCode int
	Err        error
}

func (e *BadResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("renderer: bad content response (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("renderer: bad content response (status %d)", e.StatusCode)
}

func (e *BadResponseError) Unwrap() error { return e.Err }

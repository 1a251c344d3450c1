package activity

import "fmt"

// FetchError reports the activities endpoint answering with a status other
// than 200.
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("fetch activities: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("fetch activities: unexpected status %d: %s", e.StatusCode, e.Body)
}

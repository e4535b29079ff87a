package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned for any 401 response. The client also fires
// its invalidation callback, so callers only need to stop what they were
// doing; session teardown has already been signalled.
var ErrUnauthorized = errors.New("api: unauthorized")

// StatusError is any other non-2xx response. The body is carried along
// because the backend puts validation detail there.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Body)
}

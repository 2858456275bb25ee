package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.Status, e.Body)
}

// IsNotFound reports whether err is a 404 from the backend. Several read
// paths treat a missing endpoint the same as an empty collection.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

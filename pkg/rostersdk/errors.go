package rostersdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any response whose status is not the one the
// operation expects.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Msg is the "msg" field of the response body, when there is one.
	Msg string

	// Body is the raw response body.
	Body []byte
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("roster: HTTP %d: %s", e.StatusCode, e.Msg)
	}
	return fmt.Sprintf("roster: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is an *APIError with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsBadRequest reports whether err is an *APIError with status 400.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse builds an *APIError from a non-matching response.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       body,
	}

	var msg MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil {
		apiErr.Msg = msg.Msg
	}

	return apiErr
}

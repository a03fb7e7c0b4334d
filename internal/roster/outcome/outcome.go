// Package outcome decides how the settled result of a single CRUD call is
// reported to the client.
//
// Every mapper is a pure function of the value and error returned by the
// model layer. It never touches the store or the response; the controller
// writes the Outcome it gets back.
//
//	List    []T              -> 200 | err -> 500
//	Get     T                -> 200 | store.ErrNotFound -> 404 | err -> 500
//	Create  T                -> 201 | err -> 400 echoing the request body
//	Update  []int64 (ids)    -> 200 | empty or store.ErrNotFound -> 404 | err -> 500
//	Delete  int64 (rows)     -> 204 | 0 -> 404 | err -> 500
package outcome

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/roster/internal/roster/store"
)

// Kind tags an Outcome.
type Kind int

const (
	Success Kind = iota
	NotFound
	ValidationError
	InternalError
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case NotFound:
		return "not_found"
	case ValidationError:
		return "validation_error"
	case InternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// InternalErrorMsg is the body text of every 500 response.
const InternalErrorMsg = "something went wrong"

// Message is the JSON body used for not-found and internal errors.
type Message struct {
	Msg string `json:"msg"`
}

// Outcome is the result of one CRUD call, ready to be written.
type Outcome struct {
	Kind   Kind
	Status int

	// Body is encoded as JSON. A nil Body means no body is written at all.
	Body any

	// Raw, when set, is written verbatim instead of Body. Validation errors
	// use it to echo the caller's payload byte for byte.
	Raw json.RawMessage

	// Err is the error that produced a non-success outcome, kept for logging.
	// It is never sent to the client.
	Err error
}

// HasBody reports whether a response body should be written.
func (o Outcome) HasBody() bool {
	return o.Raw != nil || o.Body != nil
}

// List maps the result of a find-all call.
func List[T any](records []T, err error) Outcome {
	if err != nil {
		return internal(err)
	}
	if records == nil {
		records = []T{}
	}
	return Outcome{Kind: Success, Status: http.StatusOK, Body: records}
}

// Get maps the result of a find-by-id call. store.ErrNotFound is the absent
// marker.
func Get[T any](record T, err error, resource string) Outcome {
	switch {
	case err == nil:
		return Outcome{Kind: Success, Status: http.StatusOK, Body: record}
	case errors.Is(err, store.ErrNotFound):
		return Missing(resource)
	default:
		return internal(err)
	}
}

// Create maps the result of a create call. Any error is reported as a
// validation error carrying the original request body, whatever its cause.
func Create[T any](record T, err error, requestBody []byte) Outcome {
	if err != nil {
		o := Invalid(requestBody)
		o.Err = err
		return o
	}
	return Outcome{Kind: Success, Status: http.StatusCreated, Body: record}
}

// Update maps the result of an update call, which reports the affected ids.
func Update(ids []int64, err error, resource string) Outcome {
	switch {
	case err == nil && len(ids) > 0:
		return Outcome{Kind: Success, Status: http.StatusOK, Body: ids}
	case err == nil, errors.Is(err, store.ErrNotFound):
		return Missing(resource)
	default:
		return internal(err)
	}
}

// Delete maps the result of a destroy call, which reports the deleted row
// count. Success carries no body.
func Delete(deleted int64, err error, resource string) Outcome {
	switch {
	case err != nil:
		return internal(err)
	case deleted > 0:
		return Outcome{Kind: Success, Status: http.StatusNoContent}
	default:
		return Missing(resource)
	}
}

// Missing is the not-found outcome for resource, e.g. {"msg":"user not found"}.
func Missing(resource string) Outcome {
	return Outcome{
		Kind:   NotFound,
		Status: http.StatusNotFound,
		Body:   Message{Msg: resource + " not found"},
	}
}

// Invalid is the validation-error outcome. The request body is echoed back
// when it is valid JSON; otherwise it is sent as a JSON string, and an empty
// body becomes {}.
func Invalid(requestBody []byte) Outcome {
	return Outcome{
		Kind:   ValidationError,
		Status: http.StatusBadRequest,
		Raw:    echo(requestBody),
	}
}

func internal(err error) Outcome {
	return Outcome{
		Kind:   InternalError,
		Status: http.StatusInternalServerError,
		Body:   Message{Msg: InternalErrorMsg},
		Err:    err,
	}
}

func echo(body []byte) json.RawMessage {
	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage(`{}`)
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, err := json.Marshal(string(body))
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return quoted
}

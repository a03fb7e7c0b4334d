package http

import (
	"io"
	"net/http"

	"github.com/aussiebroadwan/roster/internal/roster/outcome"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

// maxBodyBytes caps the size of a create or update payload.
const maxBodyBytes = 1 << 20

// writeOutcome is the only place a resource handler writes its response.
func writeOutcome(w http.ResponseWriter, r *http.Request, o outcome.Outcome) {
	log := slogx.FromContext(r.Context())

	switch o.Kind {
	case outcome.InternalError:
		log.Error("request failed", "outcome", o.Kind.String(), "error", o.Err)
	case outcome.ValidationError:
		if o.Err != nil {
			log.Warn("request rejected", "outcome", o.Kind.String(), "error", o.Err)
		}
	}

	switch {
	case !o.HasBody():
		httpx.NoContent(w, o.Status)
	case o.Raw != nil:
		httpx.WriteRawJSON(w, o.Status, o.Raw)
	default:
		httpx.WriteJSON(w, o.Status, o.Body)
	}
}

// readBody reads the whole request body. Whatever could be read is returned
// along with any error, so it can still be echoed back.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// rejected is the validation-error outcome for a payload the action layer
// refused.
func rejected(body []byte, err error) outcome.Outcome {
	o := outcome.Invalid(body)
	o.Err = err
	return o
}

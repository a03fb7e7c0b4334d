// Package reqid generates and validates request correlation ids.
//
// Ids are ULIDs, so they sort by creation time and can be traced back to the
// moment a request entered the service.
package reqid

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Header is the request/response header used to carry the id.
const Header = "X-Request-ID"

// maxLen bounds ids accepted from callers so they cannot bloat log lines.
const maxLen = 128

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a fresh ULID using the current UTC time.
func New() string {
	return NewAt(time.Now().UTC())
}

// NewAt returns a ULID for the given time. Useful in tests.
func NewAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// FromHeader returns the caller supplied id when it is usable, otherwise a
// freshly generated one. Usable means non-empty, at most 128 bytes, and only
// printable ASCII without spaces.
func FromHeader(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxLen {
		return New()
	}
	for i := range len(value) {
		if c := value[i]; c <= ' ' || c > '~' {
			return New()
		}
	}
	return value
}


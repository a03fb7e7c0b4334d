package outcome_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/roster/internal/roster/outcome"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

var errDB = errors.New("database is on fire")

func TestList(t *testing.T) {
	t.Run("records", func(t *testing.T) {
		recs := []record{{1, "alice"}, {2, "bob"}}
		o := outcome.List(recs, nil)

		require.Equal(t, outcome.Success, o.Kind)
		require.Equal(t, http.StatusOK, o.Status)
		require.Equal(t, recs, o.Body)
	})

	t.Run("nil slice becomes empty array", func(t *testing.T) {
		o := outcome.List[record](nil, nil)

		require.Equal(t, http.StatusOK, o.Status)
		require.Equal(t, []record{}, o.Body)
	})

	t.Run("error", func(t *testing.T) {
		o := outcome.List[record](nil, errDB)

		require.Equal(t, outcome.InternalError, o.Kind)
		require.Equal(t, http.StatusInternalServerError, o.Status)
		require.Equal(t, outcome.Message{Msg: "something went wrong"}, o.Body)
		require.ErrorIs(t, o.Err, errDB)
	})
}

func TestGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		o := outcome.Get(record{1, "alice"}, nil, "user")

		require.Equal(t, http.StatusOK, o.Status)
		require.Equal(t, record{1, "alice"}, o.Body)
	})

	t.Run("absent", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", store.ErrNotFound)
		o := outcome.Get(record{}, err, "user")

		require.Equal(t, outcome.NotFound, o.Kind)
		require.Equal(t, http.StatusNotFound, o.Status)
		require.Equal(t, outcome.Message{Msg: "user not found"}, o.Body)
	})

	t.Run("error", func(t *testing.T) {
		o := outcome.Get(record{}, errDB, "user")
		require.Equal(t, http.StatusInternalServerError, o.Status)
	})
}

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		o := outcome.Create(record{1, "alice"}, nil, []byte(`{"username":"alice"}`))

		require.Equal(t, outcome.Success, o.Kind)
		require.Equal(t, http.StatusCreated, o.Status)
		require.Equal(t, record{1, "alice"}, o.Body)
	})

	t.Run("any error is a validation error echoing the body", func(t *testing.T) {
		body := []byte(`{"username":"alice"}`)

		for _, err := range []error{errDB, store.ErrAlreadyExists} {
			o := outcome.Create(record{}, err, body)

			require.Equal(t, outcome.ValidationError, o.Kind)
			require.Equal(t, http.StatusBadRequest, o.Status)
			require.JSONEq(t, string(body), string(o.Raw))
			require.ErrorIs(t, o.Err, err)
		}
	})
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name   string
		ids    []int64
		err    error
		status int
		body   any
	}{
		{"affected", []int64{1}, nil, http.StatusOK, []int64{1}},
		{"nil result", nil, nil, http.StatusNotFound, outcome.Message{Msg: "user not found"}},
		{"empty result", []int64{}, nil, http.StatusNotFound, outcome.Message{Msg: "user not found"}},
		{"not found error", nil, store.ErrNotFound, http.StatusNotFound, outcome.Message{Msg: "user not found"}},
		{"error", nil, errDB, http.StatusInternalServerError, outcome.Message{Msg: "something went wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := outcome.Update(tt.ids, tt.err, "user")
			require.Equal(t, tt.status, o.Status)
			require.Equal(t, tt.body, o.Body)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("deleted has no body", func(t *testing.T) {
		o := outcome.Delete(1, nil, "user")

		require.Equal(t, outcome.Success, o.Kind)
		require.Equal(t, http.StatusNoContent, o.Status)
		require.False(t, o.HasBody())
	})

	t.Run("nothing deleted", func(t *testing.T) {
		o := outcome.Delete(0, nil, "role")

		require.Equal(t, http.StatusNotFound, o.Status)
		require.Equal(t, outcome.Message{Msg: "role not found"}, o.Body)
	})

	t.Run("error", func(t *testing.T) {
		o := outcome.Delete(0, errDB, "user")

		require.Equal(t, http.StatusInternalServerError, o.Status)
		require.True(t, o.HasBody())
	})
}

func TestInvalidEcho(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"json object", `{"username":""}`, `{"username":""}`},
		{"empty", ``, `{}`},
		{"whitespace", "  \n", `{}`},
		{"malformed", `{"username":`, `"{\"username\":"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := outcome.Invalid([]byte(tt.body))

			require.Equal(t, outcome.ValidationError, o.Kind)
			require.Equal(t, http.StatusBadRequest, o.Status)
			require.JSONEq(t, tt.want, string(o.Raw))
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "success", outcome.Success.String())
	require.Equal(t, "not_found", outcome.NotFound.String())
	require.Equal(t, "validation_error", outcome.ValidationError.String())
	require.Equal(t, "internal_error", outcome.InternalError.String())
}

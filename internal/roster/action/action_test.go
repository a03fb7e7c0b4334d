package action_test

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/roster/internal/roster/action"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) []action.FieldError {
	t.Helper()

	var aerr *action.Error
	require.True(t, errors.As(err, &aerr), "expected *action.Error, got %T", err)
	return aerr.Fields
}

func TestDecodeUserCreate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in, err := action.DecodeUserCreate([]byte(`{"username":"alice","password":"correct-horse","email":"alice@example.com","role_id":2}`))
		require.NoError(t, err)
		require.Equal(t, "alice", in.Username)
		require.Equal(t, "correct-horse", in.Password)
		require.Equal(t, "alice@example.com", in.Email)
		require.NotNil(t, in.RoleID)
		require.Equal(t, int64(2), *in.RoleID)
	})

	t.Run("username only", func(t *testing.T) {
		in, err := action.DecodeUserCreate([]byte(`{"username":"alice"}`))
		require.NoError(t, err)
		require.Equal(t, "alice", in.Username)
		require.Nil(t, in.RoleID)
	})

	t.Run("empty bodies", func(t *testing.T) {
		for _, body := range []string{``, "  \n", `null`, `{}`, `{ }`} {
			_, err := action.DecodeUserCreate([]byte(body))
			require.ErrorIs(t, err, action.ErrEmptyBody, "body %q", body)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, body := range []string{`{"username":`, `[]`, `"alice"`} {
			_, err := action.DecodeUserCreate([]byte(body))
			require.ErrorIs(t, err, action.ErrMalformedBody, "body %q", body)
		}
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := action.DecodeUserCreate([]byte(`{"email":"alice@example.com"}`))
		require.ErrorIs(t, err, action.ErrValidation)
		require.Equal(t, []action.FieldError{{Field: "username", Error: "is required"}}, fieldErrors(t, err))
	})

	t.Run("field rules", func(t *testing.T) {
		_, err := action.DecodeUserCreate([]byte(`{"username":"al","email":"nope","password":"short"}`))
		require.ErrorIs(t, err, action.ErrValidation)
		require.ElementsMatch(t, []action.FieldError{
			{Field: "username", Error: "must be at least 3 characters"},
			{Field: "email", Error: "must be a valid email address"},
			{Field: "password", Error: "must be at least 8 characters"},
		}, fieldErrors(t, err))
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := action.DecodeUserCreate([]byte(`{"username":"alice","role_id":"admin"}`))
		require.ErrorIs(t, err, action.ErrValidation)

		fields := fieldErrors(t, err)
		require.Len(t, fields, 1)
		require.Equal(t, "role_id", fields[0].Field)
	})
}

func TestDecodeUserUpdate(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		p, err := action.DecodeUserUpdate([]byte(`{"email":"new@example.com"}`))
		require.NoError(t, err)
		require.Nil(t, p.Username)
		require.Equal(t, "new@example.com", *p.Email)
	})

	t.Run("empty is an empty patch", func(t *testing.T) {
		for _, body := range []string{``, `{}`, `null`} {
			p, err := action.DecodeUserUpdate([]byte(body))
			require.NoError(t, err, "body %q", body)
			require.True(t, p.IsEmpty())
		}
	})

	t.Run("present but empty username is rejected", func(t *testing.T) {
		_, err := action.DecodeUserUpdate([]byte(`{"username":""}`))
		require.ErrorIs(t, err, action.ErrValidation)
		require.Equal(t, "username", fieldErrors(t, err)[0].Field)
	})

	t.Run("non positive role", func(t *testing.T) {
		_, err := action.DecodeUserUpdate([]byte(`{"role_id":0}`))
		require.ErrorIs(t, err, action.ErrValidation)
		require.Equal(t, []action.FieldError{{Field: "role_id", Error: "must be greater than 0"}}, fieldErrors(t, err))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := action.DecodeUserUpdate([]byte(`{`))
		require.ErrorIs(t, err, action.ErrMalformedBody)
	})
}

func TestDecodeRole(t *testing.T) {
	in, err := action.DecodeRoleCreate([]byte(`{"name":"auditor","description":"read only"}`))
	require.NoError(t, err)
	require.Equal(t, "auditor", in.Name)

	_, err = action.DecodeRoleCreate([]byte(`{}`))
	require.ErrorIs(t, err, action.ErrEmptyBody)

	_, err = action.DecodeRoleCreate([]byte(`{"description":"no name"}`))
	require.ErrorIs(t, err, action.ErrValidation)

	p, err := action.DecodeRoleUpdate([]byte(`{"description":"changed"}`))
	require.NoError(t, err)
	require.Nil(t, p.Name)
	require.Equal(t, "changed", *p.Description)

	_, err = action.DecodeRoleUpdate([]byte(`{"name":"x"}`))
	require.ErrorIs(t, err, action.ErrValidation)
}

func TestParseID(t *testing.T) {
	id, err := action.ParseID("42")
	require.NoError(t, err)
	require.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5", "99999999999999999999"} {
		_, err := action.ParseID(raw)
		require.ErrorIs(t, err, action.ErrInvalidID, "raw %q", raw)
	}
}

func TestErrorMessage(t *testing.T) {
	err := &action.Error{
		Message: "validation failed",
		Fields:  []action.FieldError{{Field: "username", Error: "is required"}},
	}
	require.Equal(t, "validation failed: username is required", err.Error())
}

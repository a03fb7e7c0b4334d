package rostersdk_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/stretchr/testify/require"
)

func TestUserRoundTrips(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req rostersdk.CreateUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(rostersdk.User{ID: 7, Username: req.Username})
	})
	mux.HandleFunc("GET /v1/users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":7,"username":"alice"}]`)
	})
	mux.HandleFunc("PUT /v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "7", r.PathValue("id"))

		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"email":"alice@example.com"}`, string(body))
		_, _ = io.WriteString(w, `[7]`)
	})
	mux.HandleFunc("DELETE /v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := rostersdk.NewSDKClient(srv.URL + "/")

	created, err := client.CreateUser(ctx, rostersdk.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, int64(7), created.ID)
	require.Equal(t, "alice", created.Username)

	users, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	ids, err := client.UpdateUser(ctx, 7, rostersdk.UpdateUserRequest{Email: rostersdk.Ptr("alice@example.com")})
	require.NoError(t, err)
	require.Equal(t, []int64{7}, ids)

	require.NoError(t, client.DeleteUser(ctx, 7))
}

func TestAPIErrors(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/roles/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"msg":"role not found"}`)
	})
	mux.HandleFunc("POST /v1/roles", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(body)
	})
	mux.HandleFunc("DELETE /v1/roles/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"msg":"something went wrong"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := rostersdk.NewSDKClient(srv.URL)

	_, err := client.GetRole(ctx, 99)
	require.True(t, rostersdk.IsNotFound(err))
	require.EqualError(t, err, "roster: HTTP 404: role not found")

	_, err = client.CreateRole(ctx, rostersdk.CreateRoleRequest{Name: "x"})
	require.True(t, rostersdk.IsBadRequest(err))

	var apiErr *rostersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Empty(t, apiErr.Msg)
	require.JSONEq(t, `{"name":"x"}`, string(apiErr.Body))

	err = client.DeleteRole(ctx, 1)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, "something went wrong", apiErr.Msg)
}

package rostersdk

import (
	"context"
	"net/http"
)

const usersPath = "/v1/users"

// ListUsers returns every user.
func (c *SDKClient) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, usersPath, nil)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser returns the user with the given id.
func (c *SDKClient) GetUser(ctx context.Context, id int64) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, idPath(usersPath, id), nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser creates a user and returns the stored record.
func (c *SDKClient) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, usersPath, req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser applies req and returns the ids of the changed records.
func (c *SDKClient) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) ([]int64, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, idPath(usersPath, id), req)
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := decodeJSON(resp, &ids, http.StatusOK); err != nil {
		return nil, err
	}

	return ids, nil
}

// DeleteUser deletes the user with the given id.
func (c *SDKClient) DeleteUser(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, idPath(usersPath, id), nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

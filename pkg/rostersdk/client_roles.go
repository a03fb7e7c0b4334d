package rostersdk

import (
	"context"
	"net/http"
)

const rolesPath = "/v1/roles"

// ListRoles returns every role.
func (c *SDKClient) ListRoles(ctx context.Context) ([]Role, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, rolesPath, nil)
	if err != nil {
		return nil, err
	}

	var roles []Role
	if err := decodeJSON(resp, &roles, http.StatusOK); err != nil {
		return nil, err
	}

	return roles, nil
}

// GetRole returns the role with the given id.
func (c *SDKClient) GetRole(ctx context.Context, id int64) (*Role, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, idPath(rolesPath, id), nil)
	if err != nil {
		return nil, err
	}

	var role Role
	if err := decodeJSON(resp, &role, http.StatusOK); err != nil {
		return nil, err
	}

	return &role, nil
}

// CreateRole creates a role and returns the stored record.
func (c *SDKClient) CreateRole(ctx context.Context, req CreateRoleRequest) (*Role, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, rolesPath, req)
	if err != nil {
		return nil, err
	}

	var role Role
	if err := decodeJSON(resp, &role, http.StatusCreated); err != nil {
		return nil, err
	}

	return &role, nil
}

// UpdateRole applies req and returns the ids of the changed records.
func (c *SDKClient) UpdateRole(ctx context.Context, id int64, req UpdateRoleRequest) ([]int64, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, idPath(rolesPath, id), req)
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := decodeJSON(resp, &ids, http.StatusOK); err != nil {
		return nil, err
	}

	return ids, nil
}

// DeleteRole deletes the role with the given id.
func (c *SDKClient) DeleteRole(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, idPath(rolesPath, id), nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

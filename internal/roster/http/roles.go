package http

import (
	"net/http"

	"github.com/aussiebroadwan/roster/internal/roster/action"
	"github.com/aussiebroadwan/roster/internal/roster/outcome"
	"github.com/aussiebroadwan/roster/internal/roster/store"
)

const roleResource = "role"

// RolesHandler serves the /v1/roles resource.
type RolesHandler struct {
	Roles store.Roles
}

// HandleList lists roles.
//
//	@Summary	List roles
//	@Tags		Roles
//	@Produce	json
//	@Success	200	{array}		domain.Role		"List of roles"
//	@Failure	500	{object}	outcome.Message	"Internal server error"
//	@Router		/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Roles.FindAll(r.Context())
	writeOutcome(w, r, outcome.List(roles, err))
}

// HandleGet gets a role by id.
//
//	@Summary	Get a role
//	@Tags		Roles
//	@Produce	json
//	@Param		id	path		int				true	"Role ID"
//	@Success	200	{object}	domain.Role		"The role"
//	@Failure	404	{object}	outcome.Message	"Role not found"
//	@Failure	500	{object}	outcome.Message	"Internal server error"
//	@Router		/v1/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r.PathValue("id"))
	if err != nil {
		writeOutcome(w, r, outcome.Missing(roleResource))
		return
	}

	role, err := h.Roles.FindByPK(r.Context(), id)
	writeOutcome(w, r, outcome.Get(role, err, roleResource))
}

// HandleCreate creates a role.
//
//	@Summary	Create a role
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		domain.RoleInput	true	"Role to create"
//	@Success	201		{object}	domain.Role			"The created role"
//	@Failure	400		{object}	domain.RoleInput	"The rejected request body"
//	@Router		/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeOutcome(w, r, rejected(body, err))
		return
	}

	in, err := action.DecodeRoleCreate(body)
	if err != nil {
		writeOutcome(w, r, rejected(body, err))
		return
	}

	role, err := h.Roles.Create(r.Context(), in)
	writeOutcome(w, r, outcome.Create(role, err, body))
}

// HandleUpdate updates a role.
//
//	@Summary	Update a role
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Role ID"
//	@Param		request	body		domain.RolePatch	true	"Fields to change"
//	@Success	200		{array}		int					"Changed ids"
//	@Failure	400		{object}	domain.RolePatch	"The rejected request body"
//	@Failure	404		{object}	outcome.Message		"Role not found"
//	@Failure	500		{object}	outcome.Message		"Internal server error"
//	@Router		/v1/roles/{id} [put].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r.PathValue("id"))
	if err != nil {
		writeOutcome(w, r, outcome.Missing(roleResource))
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		writeOutcome(w, r, rejected(body, err))
		return
	}

	patch, err := action.DecodeRoleUpdate(body)
	if err != nil {
		writeOutcome(w, r, rejected(body, err))
		return
	}

	ids, err := h.Roles.Update(r.Context(), id, patch)
	writeOutcome(w, r, outcome.Update(ids, err, roleResource))
}

// HandleDelete deletes a role. Users holding it keep existing without a role.
//
//	@Summary	Delete a role
//	@Tags		Roles
//	@Param		id	path	int	true	"Role ID"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	outcome.Message	"Role not found"
//	@Failure	500	{object}	outcome.Message	"Internal server error"
//	@Router		/v1/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r.PathValue("id"))
	if err != nil {
		writeOutcome(w, r, outcome.Missing(roleResource))
		return
	}

	n, err := h.Roles.Destroy(r.Context(), id)
	writeOutcome(w, r, outcome.Delete(n, err, roleResource))
}

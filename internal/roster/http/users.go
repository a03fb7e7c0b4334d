package http

import (
	"net/http"

	"github.com/aussiebroadwan/roster/internal/roster/action"
	"github.com/aussiebroadwan/roster/internal/roster/outcome"
	"github.com/aussiebroadwan/roster/internal/roster/store"
)

const userResource = "user"

// UsersHandler serves the /v1/users resource.
type UsersHandler struct {
	Users store.Users
}

// HandleList lists users.
//
//	@Summary		List users
//	@Description	Returns every user ordered by id. An empty table yields an empty array.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		domain.User			"List of users"
//	@Failure		429	{object}	outcome.Message		"Too many requests"
//	@Failure		500	{object}	outcome.Message		"Internal server error"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.FindAll(r.Context())
	writeOutcome(w, r, outcome.List(users, err))
}

// HandleGet gets a user by id.
//
//	@Summary		Get a user
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int				true	"User ID"
//	@Success		200	{object}	domain.User		"The user"
//	@Failure		404	{object}	outcome.Message	"User not found"
//	@Failure		500	{object}	outcome.Message	"Internal server error"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r.PathValue("id"))
	if err != nil {
		writeOutcome(w, r, outcome.Missing(userResource))
		return
	}

	user, err := h.Users.FindByPK(r.Context(), id)
	writeOutcome(w, r, outcome.Get(user, err, userResource))
}

// HandleCreate creates a user.
//
//	@Summary		Create a user
//	@Description	Creates a user. Any failure, including a duplicate username, is answered with 400 and the request body echoed back.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.UserInput	true	"User to create"
//	@Success		201		{object}	domain.User			"The created user"
//	@Failure		400		{object}	domain.UserInput	"The rejected request body"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeOutcome(w, r, rejected(body, err))
		return
	}

	in, err := action.DecodeUserCreate(body)
	if err != nil {
		writeOutcome(w, r, rejected(body, err))
		return
	}

	user, err := h.Users.Create(r.Context(), in)
	writeOutcome(w, r, outcome.Create(user, err, body))
}

// HandleUpdate updates a user.
//
//	@Summary		Update a user
//	@Description	Applies the fields present in the body and returns the ids of the changed users.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"User ID"
//	@Param			request	body		domain.UserPatch	true	"Fields to change"
//	@Success		200		{array}		int					"Changed ids"
//	@Failure		400		{object}	domain.UserPatch	"The rejected request body"
//	@Failure		404		{object}	outcome.Message		"User not found"
//	@Failure		500		{object}	outcome.Message		"Internal server error"
//	@Router			/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r.PathValue("id"))
	if err != nil {
		writeOutcome(w, r, outcome.Missing(userResource))
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		writeOutcome(w, r, rejected(body, err))
		return
	}

	patch, err := action.DecodeUserUpdate(body)
	if err != nil {
		writeOutcome(w, r, rejected(body, err))
		return
	}

	ids, err := h.Users.Update(r.Context(), id, patch)
	writeOutcome(w, r, outcome.Update(ids, err, userResource))
}

// HandleDelete deletes a user.
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Param		id	path	int	true	"User ID"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	outcome.Message	"User not found"
//	@Failure	500	{object}	outcome.Message	"Internal server error"
//	@Router		/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := action.ParseID(r.PathValue("id"))
	if err != nil {
		writeOutcome(w, r, outcome.Missing(userResource))
		return
	}

	n, err := h.Users.Destroy(r.Context(), id)
	writeOutcome(w, r, outcome.Delete(n, err, userResource))
}

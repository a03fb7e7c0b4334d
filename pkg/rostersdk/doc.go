/*
Package rostersdk provides a client for the roster service.

# Overview

The roster service exposes CRUD endpoints for users and roles. SDKClient wraps
each route in one method:

	client := rostersdk.NewSDKClient("http://localhost:8080")

	user, err := client.CreateUser(ctx, rostersdk.CreateUserRequest{
		Username: "alice",
		Password: "correct-horse",
	})

	users, err := client.ListUsers(ctx)

	ids, err := client.UpdateUser(ctx, user.ID, rostersdk.UpdateUserRequest{
		Email: rostersdk.Ptr("alice@example.com"),
	})

	err = client.DeleteUser(ctx, user.ID)

Roles have the same five methods (ListRoles, GetRole, CreateRole, UpdateRole,
DeleteRole).

# Error Handling

Any response with an unexpected status becomes an *APIError. Not-found and
internal errors carry the server's message in Msg:

	_, err := client.GetUser(ctx, 42)
	if rostersdk.IsNotFound(err) {
		// no such user
	}

A rejected payload (400) carries no message. The server echoes the request body
back instead, which is available in APIError.Body.
*/
package rostersdk

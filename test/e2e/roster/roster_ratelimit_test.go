//go:build e2e

package roster_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/stretchr/testify/require"
)

func TestRateLimitWrites(t *testing.T) {
	const limit = 3
	client := setupRosterContainerWithWriteLimit(t, limit)
	ctx := t.Context()

	for i := range limit {
		_, err := client.CreateUser(ctx, rostersdk.CreateUserRequest{Username: fmt.Sprintf("user%d", i)})
		require.NoError(t, err, "request %d should not be limited", i+1)
	}

	_, err := client.CreateUser(ctx, rostersdk.CreateUserRequest{Username: "onetoomany"})
	apiErr := requireStatus(t, err, http.StatusTooManyRequests)
	require.Equal(t, "too many requests", apiErr.Msg)

	// Reads have their own budget
	users, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, limit)
}

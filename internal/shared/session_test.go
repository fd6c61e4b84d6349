package shared_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modamall/backoffice/internal/shared"
	_ "github.com/modamall/backoffice/testing"
)

func newSessionManager(t *testing.T) (*shared.SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return shared.NewSessionManager(client, time.Hour), mr
}

func TestSessionRoundTrip(t *testing.T) {
	sm, _ := newSessionManager(t)
	ctx := context.Background()

	id := shared.Identity{AccountID: 7, PermissionTypeID: shared.PermissionSeller, Username: "modamall"}
	token, err := sm.Issue(ctx, id)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := sm.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, id, resolved)
	assert.True(t, resolved.IsSeller())
}

func TestSessionUnknownToken(t *testing.T) {
	sm, _ := newSessionManager(t)

	_, err := sm.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, shared.ErrSessionNotFound)

	_, err = sm.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, shared.ErrSessionNotFound)
}

func TestSessionExpiry(t *testing.T) {
	sm, mr := newSessionManager(t)
	ctx := context.Background()

	token, err := sm.Issue(ctx, shared.Identity{AccountID: 1, PermissionTypeID: shared.PermissionAdmin})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = sm.Resolve(ctx, token)
	assert.ErrorIs(t, err, shared.ErrSessionNotFound)
}

func TestSessionDestroy(t *testing.T) {
	sm, _ := newSessionManager(t)
	ctx := context.Background()

	token, err := sm.Issue(ctx, shared.Identity{AccountID: 1, PermissionTypeID: shared.PermissionAdmin})
	require.NoError(t, err)

	require.NoError(t, sm.Destroy(ctx, token))

	_, err = sm.Resolve(ctx, token)
	assert.ErrorIs(t, err, shared.ErrSessionNotFound)
}

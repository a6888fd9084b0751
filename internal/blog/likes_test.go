package blog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	post := seedPost(t, svc, alice.ID, "Likeable", true)

	require.NoError(t, svc.Like(ctx, bob.ID, post.ID))
	require.NoError(t, svc.Like(ctx, bob.ID, post.ID)) // double-click

	count, err := svc.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err := svc.Liked(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeMissingPost(t *testing.T) {
	svc := newTestService(t)
	bob := seedUser(t, "bob")

	err := svc.Like(context.Background(), bob.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnlike(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	post := seedPost(t, svc, alice.ID, "Likeable", true)

	// Unliking without a prior like is a no-op, not an error.
	require.NoError(t, svc.Unlike(ctx, bob.ID, post.ID))

	require.NoError(t, svc.Like(ctx, bob.ID, post.ID))
	require.NoError(t, svc.Unlike(ctx, bob.ID, post.ID))

	count, err := svc.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	liked, err := svc.Liked(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikesAreIndependentAcrossUsers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	post := seedPost(t, svc, alice.ID, "Popular", true)

	require.NoError(t, svc.Like(ctx, bob.ID, post.ID))
	require.NoError(t, svc.Like(ctx, carol.ID, post.ID))

	count, err := svc.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.Unlike(ctx, bob.ID, post.ID))

	count, err = svc.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err := svc.Liked(ctx, carol.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

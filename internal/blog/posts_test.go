package blog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitmishra16/Blogger/internal/models"
)

func TestCreatePostValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")

	_, err := svc.CreatePost(ctx, alice.ID, CreatePostInput{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "x", Tag: "nope"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "x", Theme: 4})
	assert.ErrorIs(t, err, ErrInvalidInput)

	post, err := svc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "x", Tag: "travel"})
	require.NoError(t, err)
	assert.Equal(t, 1, post.Theme) // default theme
	assert.False(t, post.Published)
	assert.Equal(t, alice.Username, post.User.Username)
}

func TestDraftVisibility(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	post := seedPost(t, svc, alice.ID, "Hello", false)

	// Anonymous and other users may not view a draft.
	_, err := svc.GetPost(ctx, post.ID, Anonymous)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.GetPost(ctx, post.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// The owner may.
	got, err := svc.GetPost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)

	// After publishing, everyone may.
	published, err := svc.PublishPost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, published.Published)

	got, err = svc.GetPost(ctx, post.ID, Anonymous)
	require.NoError(t, err)
	assert.True(t, got.Published)
}

func TestGetPostNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetPost(context.Background(), 9999, Anonymous)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnershipGates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	post := seedPost(t, svc, alice.ID, "Mine", true)

	_, err := svc.UpdatePost(ctx, post.ID, bob.ID, UpdatePostInput{Title: "Stolen"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.PublishPost(ctx, post.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeletePost(ctx, post.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Nothing changed.
	got, err := svc.GetPost(ctx, post.ID, Anonymous)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)
}

func TestUpdatePostKeepsPublishState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")

	draft := seedPost(t, svc, alice.ID, "Draft", false)

	updated, err := svc.UpdatePost(ctx, draft.ID, alice.ID, UpdatePostInput{
		Title:   "Draft v2",
		Content: "rewritten",
		Tag:     "tech",
		Theme:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Draft v2", updated.Title)
	assert.Equal(t, "tech", updated.UserTag)
	assert.Equal(t, 3, updated.Theme)
	assert.False(t, updated.Published)

	_, err = svc.UpdatePost(ctx, draft.ID, alice.ID, UpdatePostInput{Tag: "bogus"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePostRenamesLikeEdges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	post := seedPost(t, svc, alice.ID, "Old title", true)
	require.NoError(t, svc.Like(ctx, bob.ID, post.ID))

	_, err := svc.UpdatePost(ctx, post.ID, alice.ID, UpdatePostInput{Title: "New title"})
	require.NoError(t, err)

	top, err := svc.TopLikedPosts(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "New title", top[0].Title)
}

func TestPublishIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")

	post := seedPost(t, svc, alice.ID, "Hello", true)

	republished, err := svc.PublishPost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, republished.Published)
}

func TestDeletePostCascades(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	post := seedPost(t, svc, alice.ID, "Doomed", true)
	_, err := svc.AddComment(ctx, post.ID, "nice one", &bob.ID)
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, post.ID, "drive-by", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Like(ctx, bob.ID, post.ID))

	require.NoError(t, svc.DeletePost(ctx, post.ID, alice.ID))

	_, err = svc.GetPost(ctx, post.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var comments, likes int64
	testDB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	testDB.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&likes)
	assert.Zero(t, comments)
	assert.Zero(t, likes)
}

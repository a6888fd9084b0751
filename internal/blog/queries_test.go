package blog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitmishra16/Blogger/internal/models"
)

func TestTopLikedPosts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")

	likers := make([]*models.User, 10)
	for i := range likers {
		likers[i] = seedUser(t, fmt.Sprintf("liker%02d", i))
	}

	// Five posts with like counts 10, 10, 5, 3 and 0.
	counts := []int{10, 10, 5, 3, 0}
	posts := make([]*models.Post, len(counts))
	for i, n := range counts {
		posts[i] = seedPost(t, svc, alice.ID, fmt.Sprintf("post-%d", i), true)
		for j := 0; j < n; j++ {
			require.NoError(t, svc.Like(ctx, likers[j].ID, posts[i].ID))
		}
	}

	top, err := svc.TopLikedPosts(ctx, 5)
	require.NoError(t, err)

	// The zero-count post never appears; ties order by ascending post id.
	require.Len(t, top, 4)
	assert.Equal(t, []int64{10, 10, 5, 3}, []int64{top[0].Count, top[1].Count, top[2].Count, top[3].Count})
	assert.Equal(t, posts[0].ID, top[0].PostID)
	assert.Equal(t, posts[1].ID, top[1].PostID)
	assert.Equal(t, posts[2].ID, top[2].PostID)
	assert.Equal(t, posts[3].ID, top[3].PostID)
	assert.Equal(t, "post-0", top[0].Title)
}

func TestTopLikedPostsLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	for i := 0; i < 3; i++ {
		post := seedPost(t, svc, alice.ID, fmt.Sprintf("p%d", i), true)
		require.NoError(t, svc.Like(ctx, bob.ID, post.ID))
	}

	top, err := svc.TopLikedPosts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestListPosts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	seedPost(t, svc, alice.ID, "a-draft", false)
	seedPost(t, svc, alice.ID, "a-pub-1", true)
	seedPost(t, svc, alice.ID, "a-pub-2", true)
	seedPost(t, svc, bob.ID, "b-pub", true)

	published, err := svc.ListPosts(ctx, ListFilter{Visibility: VisibilityPublished})
	require.NoError(t, err)
	assert.Equal(t, int64(3), published.Total)

	aliceAll, err := svc.ListPosts(ctx, ListFilter{Visibility: VisibilityAll, AuthorID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), aliceAll.Total)

	aliceDrafts, err := svc.ListPosts(ctx, ListFilter{Visibility: VisibilityUnpublished, AuthorID: alice.ID})
	require.NoError(t, err)
	require.Len(t, aliceDrafts.Items, 1)
	assert.Equal(t, "a-draft", aliceDrafts.Items[0].Title)

	_, err = svc.ListPosts(ctx, ListFilter{Visibility: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListPostsPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")

	for i := 0; i < 8; i++ {
		seedPost(t, svc, alice.ID, fmt.Sprintf("post-%d", i), true)
	}

	page1, err := svc.ListPosts(ctx, ListFilter{Visibility: VisibilityPublished, Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 5)
	assert.Equal(t, int64(8), page1.Total)

	page2, err := svc.ListPosts(ctx, ListFilter{Visibility: VisibilityPublished, Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, page2.Items, 3)

	// Newest first, no overlap between pages.
	seen := map[int]bool{}
	for _, p := range append(page1.Items, page2.Items...) {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestSearchByTag(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	alice := seedUser(t, "alice")

	_, err := svc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "t1", Tag: "travel", Publish: true})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "t2", Tag: "travel"})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "f1", Tag: "food", Publish: true})
	require.NoError(t, err)

	travel, err := svc.SearchByTag(ctx, "travel")
	require.NoError(t, err)
	require.Len(t, travel, 2)
	assert.Less(t, travel[0].ID, travel[1].ID)

	none, err := svc.SearchByTag(ctx, "music")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCommentsReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	bobPost := seedPost(t, svc, bob.ID, "Bob writes", true)
	carolPost := seedPost(t, svc, carol.ID, "Carol writes", true)

	// On bob's post: one authenticated comment, one anonymous.
	authed, err := svc.AddComment(ctx, bobPost.ID, "signed comment", &bob.ID)
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, bobPost.ID, "anonymous comment", nil)
	require.NoError(t, err)

	// A comment on carol's post must not show up in bob's report.
	_, err = svc.AddComment(ctx, carolPost.ID, "other thread", &bob.ID)
	require.NoError(t, err)

	rows, err := svc.CommentsReport(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, bobPost.ID, rows[0].PostID)
	assert.Equal(t, "Bob writes", rows[0].PostTitle)
	assert.Equal(t, authed.ID, rows[0].CommentID)
	assert.Equal(t, "signed comment", rows[0].Body)

	_, err = svc.CommentsReport(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

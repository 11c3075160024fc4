package services

import (
	"testing"

	"github.com/main18/Developers-Social-Network/app/models"
	"github.com/main18/Developers-Social-Network/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) (*PostService, *mockUserRepo, *mockPostRepo) {
	t.Helper()
	users := newMockUserRepo()
	posts := newMockPostRepo()

	require.NoError(t, users.Create(&models.User{
		Name:   "Alice",
		Email:  "a@x.com",
		Avatar: "https://example.com/alice.png",
	}))
	require.NoError(t, users.Create(&models.User{
		Name:   "Bob",
		Email:  "b@x.com",
		Avatar: "https://example.com/bob.png",
	}))

	return NewPostService(posts, users), users, posts
}

const (
	aliceID = 1
	bobID   = 2
)

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	service, _, _ := newPostService(t)

	post, err := service.CreatePost(aliceID, "hello")
	require.NoError(t, err)

	assert.Equal(t, aliceID, post.UserID)
	assert.Equal(t, "Alice", post.Name)
	assert.Equal(t, "https://example.com/alice.png", post.Avatar)
	assert.Equal(t, "hello", post.Text)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	service, _, _ := newPostService(t)

	_, err := service.CreatePost(99, "hello")
	assert.Error(t, err)
}

func TestDeletePostOwnership(t *testing.T) {
	service, _, _ := newPostService(t)

	post, err := service.CreatePost(aliceID, "hello")
	require.NoError(t, err)

	err = service.DeletePost(bobID, post.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Post must still exist after the rejected delete
	_, err = service.GetPost(post.ID)
	require.NoError(t, err)

	require.NoError(t, service.DeletePost(aliceID, post.ID))
	_, err = service.GetPost(post.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDeletePostMissing(t *testing.T) {
	service, _, _ := newPostService(t)

	err := service.DeletePost(aliceID, 42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestLikeTwiceFails(t *testing.T) {
	service, _, _ := newPostService(t)

	post, err := service.CreatePost(aliceID, "hello")
	require.NoError(t, err)

	likes, err := service.Like(bobID, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, bobID, likes[0].UserID)

	_, err = service.Like(bobID, post.ID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)
}

func TestUnlikeRemovesOnlyRequestersLike(t *testing.T) {
	service, _, _ := newPostService(t)

	post, err := service.CreatePost(aliceID, "hello")
	require.NoError(t, err)

	_, err = service.Like(aliceID, post.ID)
	require.NoError(t, err)
	_, err = service.Like(bobID, post.ID)
	require.NoError(t, err)

	likes, err := service.Unlike(bobID, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, aliceID, likes[0].UserID)
}

func TestUnlikeWithoutLikeIsNoOp(t *testing.T) {
	service, _, _ := newPostService(t)

	post, err := service.CreatePost(aliceID, "hello")
	require.NoError(t, err)

	_, err = service.Unlike(bobID, post.ID)
	assert.ErrorIs(t, err, ErrNotLiked)
}

func TestAddCommentSnapshotsAuthor(t *testing.T) {
	service, _, _ := newPostService(t)

	post, err := service.CreatePost(aliceID, "hello")
	require.NoError(t, err)

	comments, err := service.AddComment(bobID, post.ID, "nice post")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, bobID, comments[0].UserID)
	assert.Equal(t, "Bob", comments[0].Name)
	assert.Equal(t, "https://example.com/bob.png", comments[0].Avatar)
	assert.NotEmpty(t, comments[0].ID)
	assert.False(t, comments[0].CreatedAt.IsZero())

	// Newest comment first
	comments, err = service.AddComment(aliceID, post.ID, "thanks")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "thanks", comments[0].Text)
}

func TestDeleteCommentOwnership(t *testing.T) {
	service, _, _ := newPostService(t)

	post, err := service.CreatePost(aliceID, "hello")
	require.NoError(t, err)

	comments, err := service.AddComment(bobID, post.ID, "nice post")
	require.NoError(t, err)
	commentID := comments[0].ID

	_, err = service.DeleteComment(aliceID, post.ID, commentID)
	assert.ErrorIs(t, err, ErrForbidden)

	remaining, err := service.DeleteComment(bobID, post.ID, commentID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteCommentMissing(t *testing.T) {
	service, _, _ := newPostService(t)

	post, err := service.CreatePost(aliceID, "hello")
	require.NoError(t, err)

	_, err = service.DeleteComment(aliceID, post.ID, "no-such-comment")
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = service.DeleteComment(aliceID, 42, "whatever")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

package services

import (
	"fmt"
	"time"

	"github.com/main18/Developers-Social-Network/app/models"
	"github.com/main18/Developers-Social-Network/app/repositories"

	"github.com/google/uuid"
)

// PostService handles business logic for posts, likes, and comments. Every
// mutation assumes the caller was resolved by the auth gate; ownership checks
// happen here, against the stored author reference.
type PostService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository) *PostService {
	return &PostService{
		posts: posts,
		users: users,
	}
}

// CreatePost creates a post authored by the user, snapshotting the author's
// name and avatar as they are right now.
func (s *PostService) CreatePost(userID int, text string) (*models.Post, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load author: %v", err)
	}

	post := &models.Post{
		UserID: user.ID,
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID with its likes and comments.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.posts.GetByID(id)
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.posts.List()
}

// DeletePost removes a post. Only the author may delete it.
func (s *PostService) DeletePost(userID, postID int) error {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrForbidden
	}
	return s.posts.Delete(postID)
}

// Like records a like for the user and returns the post's likes. A second
// like by the same user fails with ErrAlreadyLiked.
func (s *PostService) Like(userID, postID int) ([]models.Like, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(userID) {
		return nil, ErrAlreadyLiked
	}

	post.AddLike(userID)
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes the user's like and returns the remaining likes. If the
// user has no like on the post it returns ErrNotLiked, which callers report
// as an informational no-op.
func (s *PostService) Unlike(userID, postID int) ([]models.Like, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if !post.RemoveLike(userID) {
		return nil, ErrNotLiked
	}

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment adds a comment by the user to the post and returns the post's
// comments, newest first. The author's name and avatar are snapshotted.
func (s *PostService) AddComment(userID, postID int, text string) ([]models.Comment, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load author: %v", err)
	}
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now(),
	}
	post.AddComment(comment)

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment removes a comment from the post and returns the remaining
// comments. Only the comment's author may delete it.
func (s *PostService) DeleteComment(userID, postID int, commentID string) ([]models.Comment, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, ErrForbidden
	}

	post.RemoveComment(commentID)
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

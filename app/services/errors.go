package services

import "errors"

var (
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot tell whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCommentNotFound is returned when a comment id does not exist on an
	// existing post.
	ErrCommentNotFound = errors.New("comment does not exist")
	// ErrForbidden is returned when a requester mutates a resource they do
	// not own.
	ErrForbidden = errors.New("not authorized")
	// ErrAlreadyLiked is returned when a user likes a post twice.
	ErrAlreadyLiked = errors.New("post already liked")
	// ErrNotLiked signals an unlike with no existing like; callers treat it
	// as an informational no-op, not a failure.
	ErrNotLiked = errors.New("post has not yet been liked")
)

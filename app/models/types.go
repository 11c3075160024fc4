package models

import "time"

// User represents a registered account. The password field only ever holds a
// bcrypt hash and is never serialized.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Post is the aggregate document: it owns its likes and comments and is
// persisted as a single record. Name and Avatar are snapshots of the author
// at creation time and are intentionally never re-synced.
type Post struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
}

// Like marks that a user liked a post. At most one per user per post.
type Like struct {
	UserID int `json:"user"`
}

// Comment lives inside its post document. Name and Avatar are author
// snapshots, same as on Post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// RegisterRequest is the POST /api/users body.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the POST /api/auth body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TextRequest is the body for creating posts and comments.
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

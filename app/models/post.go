package models

import "time"

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Likes == nil {
		p.Likes = []Like{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}

// LikedBy reports whether the user already has a like on the post.
func (p *Post) LikedBy(userID int) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// AddLike prepends a like for the user, newest first.
func (p *Post) AddLike(userID int) {
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
}

// RemoveLike removes the user's like if present and reports whether one
// was removed. Other users' likes are left intact.
func (p *Post) RemoveLike(userID int) bool {
	for i, like := range p.Likes {
		if like.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return true
		}
	}
	return false
}

// AddComment prepends a comment, newest first.
func (p *Post) AddComment(comment Comment) {
	p.Comments = append([]Comment{comment}, p.Comments...)
}

// FindComment returns the comment with the given id, or nil.
func (p *Post) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// RemoveComment removes the comment with the given id and reports whether it
// existed.
func (p *Post) RemoveComment(commentID string) bool {
	for i, comment := range p.Comments {
		if comment.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}

package repositories

import "github.com/main18/Developers-Social-Network/app/models"

// UserRepository defines the interface for user data access. Email uniqueness
// is enforced at creation; users are immutable afterwards in this scope.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// PostRepository defines the interface for post data access. A post is stored
// as one document together with its likes and comments, so Update rewrites
// the whole aggregate.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

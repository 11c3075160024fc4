package repositories

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/main18/Developers-Social-Network/app/models"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository is the Badger-backed document store. Users are stored under
// user:<id> with an email:<email> index key enforcing uniqueness; each post
// is one document under post:<id> holding its likes and comments, relying on
// Badger's per-key atomic writes.
type Repository struct {
	db       *badger.DB
	mutex    sync.RWMutex
	dbPath   string
	isTestDB bool
}

func NewRepository(path string) (*Repository, error) {
	isTest := false
	if path == "" || path == "test_db" {
		// If no path is provided or if "test_db" is explicitly used,
		// create a unique temporary directory for testing to ensure isolation.
		tempPath, err := os.MkdirTemp("", "devsocial_test_db_")
		if err != nil {
			return nil, fmt.Errorf("Error creating temp dir: %v", err)
		}
		path = tempPath
		isTest = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	// For testing, ensure the database is clean by dropping all keys.
	if isTest {
		if err := db.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to drop all keys: %v", err)
		}
	}
	return &Repository{
		db:       db,
		dbPath:   path,
		isTestDB: isTest,
	}, nil
}

func (r *Repository) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if err := r.db.Close(); err != nil {
		return err
	}

	// Clean up test database
	if r.isTestDB {
		if err := os.RemoveAll(r.dbPath); err != nil {
			return fmt.Errorf("failed to cleanup test database: %v", err)
		}
	}
	return nil
}

func (r *Repository) Clear() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.db.DropAll()
}

// Users returns the user-facing view of the repository.
func (r *Repository) Users() UserRepository { return (*userStore)(r) }

// Posts returns the post-facing view of the repository.
func (r *Repository) Posts() PostRepository { return (*postStore)(r) }

// User methods

type userStore Repository

func (s *userStore) Create(user *models.User) error {
	r := (*Repository)(s)
	r.mutex.Lock()
	defer r.mutex.Unlock()

	email := strings.ToLower(user.Email)
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(emailKey(email))
		if err == nil {
			return ErrDuplicateEmail
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
		return txn.Set(emailKey(email), idBytes)
	})
}

func (s *userStore) GetByID(id int) (*models.User, error) {
	r := (*Repository)(s)
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) GetByEmail(email string) (*models.User, error) {
	r := (*Repository)(s)
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(strings.ToLower(email)))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		var id int
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return err
		}

		item, err = txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Post methods

type postStore Repository

func (s *postStore) Create(post *models.Post) error {
	r := (*Repository)(s)
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

func (s *postStore) GetByID(id int) (*models.Post, error) {
	r := (*Repository)(s)
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *postStore) List() ([]*models.Post, error) {
	r := (*Repository)(s)
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Newest first
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// Update rewrites the whole post document. A like/unlike read-modify-write
// spans GetByID and Update, so two concurrent requests on the same post can
// interleave; the last write wins.
func (s *postStore) Update(post *models.Post) error {
	r := (*Repository)(s)
	r.mutex.Lock()
	defer r.mutex.Unlock()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(postKey(post.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

func (s *postStore) Delete(id int) error {
	r := (*Repository)(s)
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
}

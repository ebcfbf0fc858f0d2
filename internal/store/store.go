// Package store is the persistence gateway: the only place storage I/O
// happens. Handlers receive a Store explicitly instead of reaching for a
// global session.
package store

import (
	"errors"

	"miniforum/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey surfaces a uniqueness violation (duplicate username).
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidReference surfaces a foreign key pointing at a missing row.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Store gives each entity type get-all, get-by-id, insert, update and
// delete. Replies are always addressed through their parent post. Every
// mutating call commits on return; a failed commit is the request's error.
type Store interface {
	ListUsers() ([]models.User, error)
	GetUser(id uint) (*models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(u *models.User) error
	DeleteUser(u *models.User) error

	ListPosts() ([]models.Post, error)
	GetPost(id uint) (*models.Post, error)
	CreatePost(p *models.Post) error
	UpdatePost(p *models.Post) error
	DeletePost(p *models.Post) error

	ListPostReplies(postID uint) ([]models.Reply, error)
	GetPostReply(postID, replyID uint) (*models.Reply, error)
	CreateReply(r *models.Reply) error
	UpdateReply(r *models.Reply) error
	DeleteReply(r *models.Reply) error
}

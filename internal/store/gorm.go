package store

import (
	"errors"

	"miniforum/internal/models"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// New wraps a gorm connection in the Store interface. The connection must
// be opened with TranslateError so constraint violations are classified.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	}
	return err
}

func (s *gormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("id ASC").Find(&users).Error
	return users, translate(err)
}

func (s *gormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormStore) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error)
}

func (s *gormStore) UpdateUser(u *models.User) error {
	return translate(s.db.Save(u).Error)
}

func (s *gormStore) DeleteUser(u *models.User) error {
	// Dependent posts and replies go with the user, via ON DELETE CASCADE.
	return translate(s.db.Delete(u).Error)
}

func (s *gormStore) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Order("id ASC").Find(&posts).Error
	return posts, translate(err)
}

func (s *gormStore) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (s *gormStore) CreatePost(p *models.Post) error {
	return translate(s.db.Create(p).Error)
}

func (s *gormStore) UpdatePost(p *models.Post) error {
	return translate(s.db.Save(p).Error)
}

func (s *gormStore) DeletePost(p *models.Post) error {
	return translate(s.db.Delete(p).Error)
}

func (s *gormStore) ListPostReplies(postID uint) ([]models.Reply, error) {
	var replies []models.Reply
	err := s.db.Where("post_id = ?", postID).Order("id ASC").Find(&replies).Error
	return replies, translate(err)
}

func (s *gormStore) GetPostReply(postID, replyID uint) (*models.Reply, error) {
	// Scoped lookup: a reply id under the wrong post is not found.
	var reply models.Reply
	if err := s.db.Where("post_id = ? AND id = ?", postID, replyID).First(&reply).Error; err != nil {
		return nil, translate(err)
	}
	return &reply, nil
}

func (s *gormStore) CreateReply(r *models.Reply) error {
	return translate(s.db.Create(r).Error)
}

func (s *gormStore) UpdateReply(r *models.Reply) error {
	return translate(s.db.Save(r).Error)
}

func (s *gormStore) DeleteReply(r *models.Reply) error {
	return translate(s.db.Delete(r).Error)
}

package store

import (
	"sync"
	"time"

	"miniforum/internal/models"
)

// Memory is an in-memory Store with the same contract as the gorm
// implementation: unique usernames, reference checks, cascade deletes and
// timestamp stamping. Tests run handlers against it without Postgres.
type Memory struct {
	mu      sync.Mutex
	users   map[uint]models.User
	posts   map[uint]models.Post
	replies map[uint]models.Reply

	nextUserID  uint
	nextPostID  uint
	nextReplyID uint
}

func NewMemory() *Memory {
	return &Memory{
		users:       make(map[uint]models.User),
		posts:       make(map[uint]models.Post),
		replies:     make(map[uint]models.Reply),
		nextUserID:  1,
		nextPostID:  1,
		nextReplyID: 1,
	}
}

func (m *Memory) ListUsers() ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]models.User, 0, len(m.users))
	for id := uint(1); id < m.nextUserID; id++ {
		if u, ok := m.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *Memory) GetUser(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) CreateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.usernameTaken(u.Username, 0) {
		return ErrDuplicateKey
	}
	u.ID = m.nextUserID
	m.nextUserID++
	now := time.Now()
	u.DateCreated = now
	u.DateModified = now
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UpdateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	if m.usernameTaken(u.Username, u.ID) {
		return ErrDuplicateKey
	}
	u.DateModified = time.Now()
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) DeleteUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	delete(m.users, u.ID)
	for id, p := range m.posts {
		if p.AuthorID == u.ID {
			delete(m.posts, id)
			m.deletePostReplies(id)
		}
	}
	for id, r := range m.replies {
		if r.AuthorID == u.ID {
			delete(m.replies, id)
		}
	}
	return nil
}

func (m *Memory) usernameTaken(username string, selfID uint) bool {
	for _, other := range m.users {
		if other.Username == username && other.ID != selfID {
			return true
		}
	}
	return false
}

func (m *Memory) ListPosts() ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	posts := make([]models.Post, 0, len(m.posts))
	for id := uint(1); id < m.nextPostID; id++ {
		if p, ok := m.posts[id]; ok {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (m *Memory) GetPost(id uint) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) CreatePost(p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[p.AuthorID]; !ok {
		return ErrInvalidReference
	}
	p.ID = m.nextPostID
	m.nextPostID++
	now := time.Now()
	p.DateCreated = now
	p.DateModified = now
	m.posts[p.ID] = *p
	return nil
}

func (m *Memory) UpdatePost(p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[p.ID]; !ok {
		return ErrNotFound
	}
	if _, ok := m.users[p.AuthorID]; !ok {
		return ErrInvalidReference
	}
	p.DateModified = time.Now()
	m.posts[p.ID] = *p
	return nil
}

func (m *Memory) DeletePost(p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[p.ID]; !ok {
		return ErrNotFound
	}
	delete(m.posts, p.ID)
	m.deletePostReplies(p.ID)
	return nil
}

func (m *Memory) deletePostReplies(postID uint) {
	for id, r := range m.replies {
		if r.PostID == postID {
			delete(m.replies, id)
		}
	}
}

func (m *Memory) ListPostReplies(postID uint) ([]models.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	replies := make([]models.Reply, 0)
	for id := uint(1); id < m.nextReplyID; id++ {
		if r, ok := m.replies[id]; ok && r.PostID == postID {
			replies = append(replies, r)
		}
	}
	return replies, nil
}

func (m *Memory) GetPostReply(postID, replyID uint) (*models.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.replies[replyID]
	if !ok || r.PostID != postID {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *Memory) CreateReply(r *models.Reply) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[r.AuthorID]; !ok {
		return ErrInvalidReference
	}
	if _, ok := m.posts[r.PostID]; !ok {
		return ErrInvalidReference
	}
	r.ID = m.nextReplyID
	m.nextReplyID++
	now := time.Now()
	r.DateCreated = now
	r.DateModified = now
	m.replies[r.ID] = *r
	return nil
}

func (m *Memory) UpdateReply(r *models.Reply) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.replies[r.ID]; !ok {
		return ErrNotFound
	}
	if _, ok := m.users[r.AuthorID]; !ok {
		return ErrInvalidReference
	}
	if _, ok := m.posts[r.PostID]; !ok {
		return ErrInvalidReference
	}
	r.DateModified = time.Now()
	m.replies[r.ID] = *r
	return nil
}

func (m *Memory) DeleteReply(r *models.Reply) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.replies[r.ID]; !ok {
		return ErrNotFound
	}
	delete(m.replies, r.ID)
	return nil
}

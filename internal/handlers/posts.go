package handlers

import (
	"errors"
	"net/http"

	"miniforum/internal/logger"
	"miniforum/internal/models"
	"miniforum/internal/store"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store store.Store
}

func NewPostHandler(s store.Store) *PostHandler {
	return &PostHandler{store: s}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.store.ListPosts()
	if err != nil {
		logger.Error.Printf("list posts: %v", err)
		message(c, http.StatusInternalServerError, "Failed to list posts.")
		return
	}
	docs := make([]map[string]any, 0, len(posts))
	for i := range posts {
		docs = append(docs, posts[i].ToDict())
	}
	c.JSON(http.StatusOK, gin.H{"posts": docs})
}

type createPostRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	AuthorID uint   `json:"author_id"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Title == "" {
		message(c, http.StatusBadRequest, "Missing required field: title")
		return
	}
	if req.Body == "" {
		message(c, http.StatusBadRequest, "Missing required field: body")
		return
	}
	if req.AuthorID == 0 {
		message(c, http.StatusBadRequest, "Missing required field: author_id")
		return
	}

	// author_id is taken verbatim from the body; the store's constraint
	// rejects a dangling reference.
	post := models.Post{Title: req.Title, Body: req.Body, AuthorID: req.AuthorID}
	if err := h.store.CreatePost(&post); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			message(c, http.StatusConflict, "Referenced entity does not exist.")
			return
		}
		logger.Error.Printf("create post: %v", err)
		message(c, http.StatusInternalServerError, "Failed to create post.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post.ToDict()})
}

func (h *PostHandler) loadPost(c *gin.Context) (*models.Post, bool) {
	id, ok := pathID(c, "pid")
	if !ok {
		message(c, http.StatusNotFound, "Post not found.")
		return nil, false
	}
	post, err := h.store.GetPost(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(c, http.StatusNotFound, "Post not found.")
		} else {
			logger.Error.Printf("get post %d: %v", id, err)
			message(c, http.StatusInternalServerError, "Failed to load post.")
		}
		return nil, false
	}
	return post, true
}

func (h *PostHandler) Get(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post.ToDict()})
}

func (h *PostHandler) Update(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	if err := models.ApplyPatch(post, fields); err != nil {
		patchError(c, err)
		return
	}
	if err := h.store.UpdatePost(post); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			message(c, http.StatusConflict, "Referenced entity does not exist.")
			return
		}
		logger.Error.Printf("update post %d: %v", post.ID, err)
		message(c, http.StatusInternalServerError, "Failed to update post.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post.ToDict()})
}

func (h *PostHandler) Delete(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	if err := h.store.DeletePost(post); err != nil {
		logger.Error.Printf("delete post %d: %v", post.ID, err)
		message(c, http.StatusInternalServerError, "Failed to delete post.")
		return
	}
	message(c, http.StatusOK, "Post deleted.")
}

func (h *PostHandler) Property(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	name := c.Param("field")
	kind, known := post.AttrKind(name)
	if !known {
		message(c, http.StatusBadRequest, "Invalid attribute: "+name)
		return
	}
	if kind != models.AttrEntity {
		message(c, http.StatusBadRequest, "Attribute is not an entity: "+name)
		return
	}

	// The only entity-valued attribute on a post is its author.
	author, err := h.store.GetUser(post.AuthorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(c, http.StatusNotFound, "User not found.")
		} else {
			logger.Error.Printf("get post %d author: %v", post.ID, err)
			message(c, http.StatusInternalServerError, "Failed to load user.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{name: author.ToDict()})
}

package handlers

import (
	"errors"
	"net/http"

	"miniforum/internal/logger"
	"miniforum/internal/models"
	"miniforum/internal/store"

	"github.com/gin-gonic/gin"
)

// ReplyHandler serves replies scoped to their parent post: every route
// first resolves the post, and a reply id under the wrong post is treated
// as missing.
type ReplyHandler struct {
	store store.Store
}

func NewReplyHandler(s store.Store) *ReplyHandler {
	return &ReplyHandler{store: s}
}

func (h *ReplyHandler) loadPost(c *gin.Context) (*models.Post, bool) {
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

func (h *ReplyHandler) loadReply(c *gin.Context, post *models.Post) (*models.Reply, bool) {
	id, ok := pathID(c, "rid")
	if !ok {
		message(c, http.StatusNotFound, "Reply not found.")
		return nil, false
	}
	reply, err := h.store.GetPostReply(post.ID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(c, http.StatusNotFound, "Reply not found.")
		} else {
			logger.Error.Printf("get reply %d of post %d: %v", id, post.ID, err)
			message(c, http.StatusInternalServerError, "Failed to load reply.")
		}
		return nil, false
	}
	return reply, true
}

func (h *ReplyHandler) List(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	replies, err := h.store.ListPostReplies(post.ID)
	if err != nil {
		logger.Error.Printf("list replies of post %d: %v", post.ID, err)
		message(c, http.StatusInternalServerError, "Failed to list replies.")
		return
	}
	docs := make([]map[string]any, 0, len(replies))
	for i := range replies {
		docs = append(docs, replies[i].ToDict())
	}
	c.JSON(http.StatusOK, gin.H{"replies": docs})
}

type createReplyRequest struct {
	Message  string `json:"message"`
	AuthorID uint   `json:"author_id"`
}

func (h *ReplyHandler) Create(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	var req createReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Message == "" {
		message(c, http.StatusBadRequest, "Missing required field: message")
		return
	}
	if req.AuthorID == 0 {
		message(c, http.StatusBadRequest, "Missing required field: author_id")
		return
	}

	// post_id comes from the path, never the body.
	reply := models.Reply{Message: req.Message, AuthorID: req.AuthorID, PostID: post.ID}
	if err := h.store.CreateReply(&reply); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			message(c, http.StatusConflict, "Referenced entity does not exist.")
			return
		}
		logger.Error.Printf("create reply on post %d: %v", post.ID, err)
		message(c, http.StatusInternalServerError, "Failed to create reply.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply.ToDict()})
}

func (h *ReplyHandler) Get(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	reply, ok := h.loadReply(c, post)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply.ToDict()})
}

func (h *ReplyHandler) Update(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	reply, ok := h.loadReply(c, post)
	if !ok {
		return
	}
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	if err := models.ApplyPatch(reply, fields); err != nil {
		patchError(c, err)
		return
	}
	if err := h.store.UpdateReply(reply); err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			message(c, http.StatusConflict, "Referenced entity does not exist.")
			return
		}
		logger.Error.Printf("update reply %d: %v", reply.ID, err)
		message(c, http.StatusInternalServerError, "Failed to update reply.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply.ToDict()})
}

func (h *ReplyHandler) Delete(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	reply, ok := h.loadReply(c, post)
	if !ok {
		return
	}
	if err := h.store.DeleteReply(reply); err != nil {
		logger.Error.Printf("delete reply %d: %v", reply.ID, err)
		message(c, http.StatusInternalServerError, "Failed to delete reply.")
		return
	}
	message(c, http.StatusOK, "Reply deleted.")
}

func (h *ReplyHandler) Property(c *gin.Context) {
	post, ok := h.loadPost(c)
	if !ok {
		return
	}
	reply, ok := h.loadReply(c, post)
	if !ok {
		return
	}
	name := c.Param("field")
	kind, known := reply.AttrKind(name)
	if !known {
		message(c, http.StatusBadRequest, "Invalid attribute: "+name)
		return
	}
	if kind != models.AttrEntity {
		message(c, http.StatusBadRequest, "Attribute is not an entity: "+name)
		return
	}

	switch name {
	case "author":
		author, err := h.store.GetUser(reply.AuthorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				message(c, http.StatusNotFound, "User not found.")
			} else {
				logger.Error.Printf("get reply %d author: %v", reply.ID, err)
				message(c, http.StatusInternalServerError, "Failed to load user.")
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{name: author.ToDict()})
	case "post":
		// The parent is already loaded; serialize it as the property.
		c.JSON(http.StatusOK, gin.H{name: post.ToDict()})
	}
}

package handlers

import (
	"errors"
	"net/http"

	"miniforum/internal/logger"
	"miniforum/internal/models"
	"miniforum/internal/store"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store store.Store
}

func NewUserHandler(s store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		logger.Error.Printf("list users: %v", err)
		message(c, http.StatusInternalServerError, "Failed to list users.")
		return
	}
	docs := make([]map[string]any, 0, len(users))
	for i := range users {
		docs = append(docs, users[i].ToDict())
	}
	c.JSON(http.StatusOK, gin.H{"users": docs})
}

type createUserRequest struct {
	Username string `json:"username"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Username == "" {
		message(c, http.StatusBadRequest, "Missing required field: username")
		return
	}

	user := models.User{Username: req.Username}
	if err := h.store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			message(c, http.StatusConflict, "Username already exists.")
			return
		}
		logger.Error.Printf("create user: %v", err)
		message(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToDict()})
}

// loadUser resolves the :id path parameter or answers the request itself.
func (h *UserHandler) loadUser(c *gin.Context) (*models.User, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		message(c, http.StatusNotFound, "User not found.")
		return nil, false
	}
	user, err := h.store.GetUser(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(c, http.StatusNotFound, "User not found.")
		} else {
			logger.Error.Printf("get user %d: %v", id, err)
			message(c, http.StatusInternalServerError, "Failed to load user.")
		}
		return nil, false
	}
	return user, true
}

func (h *UserHandler) Get(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToDict()})
}

func (h *UserHandler) Update(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	if err := models.ApplyPatch(user, fields); err != nil {
		patchError(c, err)
		return
	}
	if err := h.store.UpdateUser(user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			message(c, http.StatusConflict, "Username already exists.")
			return
		}
		logger.Error.Printf("update user %d: %v", user.ID, err)
		message(c, http.StatusInternalServerError, "Failed to update user.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToDict()})
}

func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	if err := h.store.DeleteUser(user); err != nil {
		logger.Error.Printf("delete user %d: %v", user.ID, err)
		message(c, http.StatusInternalServerError, "Failed to delete user.")
		return
	}
	message(c, http.StatusOK, "User deleted.")
}

func (h *UserHandler) Property(c *gin.Context) {
	user, ok := h.loadUser(c)
	if !ok {
		return
	}
	name := c.Param("field")
	if _, known := user.AttrKind(name); !known {
		message(c, http.StatusBadRequest, "Invalid attribute: "+name)
		return
	}
	// No user attribute resolves to a single entity; posts and replies are
	// collections and the rest are scalars.
	message(c, http.StatusBadRequest, "Attribute is not an entity: "+name)
}

package router

import (
	"miniforum/internal/handlers"
	"miniforum/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTTP surface onto the engine. The store handle
// is passed through to every handler; nothing reaches for a global session.
func RegisterRoutes(r *gin.Engine, s store.Store) {
	userHandler := handlers.NewUserHandler(s)
	postHandler := handlers.NewPostHandler(s)
	replyHandler := handlers.NewReplyHandler(s)

	r.GET("/ping", handlers.Ping)

	// Users
	r.GET("/users", userHandler.List)
	r.POST("/users", userHandler.Create)
	r.GET("/users/:id", userHandler.Get)
	r.PUT("/users/:id", userHandler.Update)
	r.DELETE("/users/:id", userHandler.Delete)
	r.GET("/users/:id/:field", userHandler.Property)

	// Posts
	r.GET("/posts", postHandler.List)
	r.POST("/posts", postHandler.Create)
	r.GET("/posts/:pid", postHandler.Get)
	r.PUT("/posts/:pid", postHandler.Update)
	r.DELETE("/posts/:pid", postHandler.Delete)
	r.GET("/posts/:pid/:field", postHandler.Property)

	// Replies, scoped to their parent post
	r.GET("/posts/:pid/replies", replyHandler.List)
	r.POST("/posts/:pid/replies", replyHandler.Create)
	r.GET("/posts/:pid/replies/:rid", replyHandler.Get)
	r.PUT("/posts/:pid/replies/:rid", replyHandler.Update)
	r.DELETE("/posts/:pid/replies/:rid", replyHandler.Delete)
	r.GET("/posts/:pid/replies/:rid/:field", replyHandler.Property)
}

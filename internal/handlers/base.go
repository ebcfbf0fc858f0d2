package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"miniforum/internal/models"

	"github.com/gin-gonic/gin"
)

// message renders the uniform confirmation/error document.
func message(c *gin.Context, code int, text string) {
	c.JSON(code, gin.H{"message": text})
}

// Ping is the health probe.
func Ping(c *gin.Context) {
	message(c, http.StatusOK, "Hello world!")
}

// pathID parses a numeric path parameter. A non-numeric id behaves like a
// missing record, so callers answer not-found.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// bindFields reads a PUT body as a field map for the patch applier.
func bindFields(c *gin.Context) (map[string]any, bool) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		message(c, http.StatusBadRequest, "Invalid request body.")
		return nil, false
	}
	return fields, true
}

// patchError maps patch failures onto their status codes and messages.
func patchError(c *gin.Context, err error) {
	var badAttr *models.InvalidAttributeError
	var badValue *models.InvalidValueError
	switch {
	case errors.As(err, &badAttr):
		message(c, http.StatusBadRequest, "Invalid attribute: "+badAttr.Name)
	case errors.As(err, &badValue):
		message(c, http.StatusBadRequest, "Invalid value for attribute: "+badValue.Name)
	default:
		message(c, http.StatusBadRequest, "Invalid request body.")
	}
}

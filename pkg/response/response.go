package response

import (
	"errors"
	"net/http"

	"go-appmanager/internal/util/errcode"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 with the record payload.
func OK(c *gin.Context, content any) {
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// List writes a 200 with page contents plus list metadata.
func List(c *gin.Context, content any, metadata any) {
	c.JSON(http.StatusOK, gin.H{"content": content, "_metadata": metadata})
}

// Created writes a 201; a nil content means no body beyond the status.
func Created(c *gin.Context, content any) {
	if content == nil {
		c.Status(http.StatusCreated)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"content": content})
}

func NoContent(c *gin.Context) { c.Status(http.StatusNoContent) }

// Err maps service errors onto the wire: field-level validation maps to a
// 400 with a per-field error object, catalogued errors keep their status,
// anything else is a 500 with no internal detail leaked.
func Err(c *gin.Context, err error) {
	var fields errcode.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	var e *errcode.Error
	if errors.As(err, &e) {
		c.JSON(e.Status, e)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
}

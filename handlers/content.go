package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monapdx/Escort-Template/internal/content"
	"github.com/monapdx/Escort-Template/pkg/logger"
)

// ContentHandler exposes the content document: public reads, admin-gated
// wholesale section replacement.
type ContentHandler struct {
	store *content.Store
}

func NewContentHandler(store *content.Store) *ContentHandler {
	return &ContentHandler{store: store}
}

// Register mounts the content routes; admin guards the mutating one.
func (h *ContentHandler) Register(r *gin.Engine, admin gin.HandlerFunc) {
	r.GET("/api/content", h.GetDocument)
	r.GET("/api/content/:section", h.GetSection)
	r.PUT("/api/content/:section", admin, h.ReplaceSection)
}

// GetDocument returns the full content document.
func (h *ContentHandler) GetDocument(c *gin.Context) {
	doc, err := h.store.Load()
	if err != nil {
		logger.Errorf("content: load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load content"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetSection returns one section, 404 when the name is unknown.
func (h *ContentHandler) GetSection(c *gin.Context) {
	val, err := h.store.GetSection(c.Param("section"))
	if err != nil {
		if errors.Is(err, content.ErrSectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "section not found"})
			return
		}
		logger.Errorf("content: get section failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load content"})
		return
	}
	c.JSON(http.StatusOK, val)
}

// ReplaceSection overwrites an existing section with the request body.
// No merge semantics: callers send the full section value.
func (h *ContentHandler) ReplaceSection(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be valid JSON"})
		return
	}

	name := c.Param("section")
	if err := h.store.ReplaceSection(name, json.RawMessage(body)); err != nil {
		if errors.Is(err, content.ErrSectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "section not found"})
			return
		}
		logger.Errorf("content: replace section %s failed: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save content"})
		return
	}
	c.JSON(http.StatusOK, json.RawMessage(body))
}

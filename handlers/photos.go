package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/monapdx/Escort-Template/internal/content"
	"github.com/monapdx/Escort-Template/internal/upload"
	"github.com/monapdx/Escort-Template/pkg/logger"
)

// PhotoHandler exposes the ordered gallery: public listing, admin-gated
// upload and delete.
type PhotoHandler struct {
	store    *content.Store
	receiver *upload.Receiver
}

func NewPhotoHandler(store *content.Store, receiver *upload.Receiver) *PhotoHandler {
	return &PhotoHandler{store: store, receiver: receiver}
}

func (h *PhotoHandler) Register(r *gin.Engine, admin gin.HandlerFunc) {
	r.GET("/api/photos", h.List)
	r.POST("/api/photos", admin, h.Upload)
	r.DELETE("/api/photos/:id", admin, h.Remove)
}

// List returns the gallery in display order (empty array when no photos).
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.store.ListPhotos()
	if err != nil {
		logger.Errorf("photos: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load photos"})
		return
	}
	c.JSON(http.StatusOK, photos)
}

// Upload accepts a multipart form with `photo` (the binary), `label` and
// `position`, stores the binary, and appends the gallery entry.
func (h *PhotoHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no photo file uploaded"})
		return
	}
	label := c.DefaultPostForm("label", "Photo")
	// a non-numeric position string parses to 0, which is the documented default
	position, _ := strconv.Atoi(c.DefaultPostForm("position", "0"))

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer f.Close()

	stored, err := h.receiver.Receive(c.Request.Context(), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, upload.ErrPayloadTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo exceeds the upload size limit"})
			return
		}
		logger.Errorf("photos: upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	photo, err := h.store.AddPhoto(stored.ID, stored.URL, label, position)
	if err != nil {
		logger.Errorf("photos: add failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save photo"})
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// Remove deletes the gallery entry and its stored binary.
func (h *PhotoHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.RemovePhoto(c.Request.Context(), id); err != nil {
		if errors.Is(err, content.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
			return
		}
		logger.Errorf("photos: remove %s failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove photo"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Package handlers provides HTTP handlers for the editor API
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/tractpage-go/internal/application/services"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
)

// SetImageRequest carries a URL chosen by the image-search collaborator.
type SetImageRequest struct {
	URL   string `json:"url" binding:"required"`
	Field string `json:"field"` // image, avatar or background
}

// AddSectionRequest creates a section of Type after After.
type AddSectionRequest struct {
	Type  string `json:"type" binding:"required"`
	After int    `json:"after"`
}

// MoveSectionRequest shifts a section by Delta places.
type MoveSectionRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// DocumentHandlers contains the working-document endpoints
type DocumentHandlers struct {
	docs   *services.DocumentService
	ingest *services.IngestService
	logger *logging.ChanneledLogger
}

// NewDocumentHandlers creates document handlers with injected dependencies
func NewDocumentHandlers(docs *services.DocumentService, ingest *services.IngestService, logger *logging.ChanneledLogger) *DocumentHandlers {
	return &DocumentHandlers{docs: docs, ingest: ingest, logger: logger}
}

// GetDocument handles GET /api/v1/document
func (h *DocumentHandlers) GetDocument(c *gin.Context) {
	doc, err := h.docs.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// PutDocument handles PUT /api/v1/document, the editor's whole-document update
func (h *DocumentHandlers) PutDocument(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	doc, err := normalize.Decode(data)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, normalize.ErrMalformedDocument) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if err := h.docs.ReplaceFrom(doc, "editor"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respondCurrent(c, http.StatusOK)
}

// ImportDocument handles POST /api/v1/document/import
func (h *DocumentHandlers) ImportDocument(c *gin.Context) {
	data, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.docs.Import(data)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, normalize.ErrMalformedDocument) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// readUpload accepts either a multipart "file" field or a raw JSON body.
func readUpload(c *gin.Context) ([]byte, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}

// AcceptCandidate handles POST /api/v1/document/candidate from the generator
func (h *DocumentHandlers) AcceptCandidate(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	result, err := h.ingest.Accept(data)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, normalize.ErrMalformedDocument) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SelectSection handles POST /api/v1/sections/:id/select
func (h *DocumentHandlers) SelectSection(c *gin.Context) {
	id, ok := sectionID(c)
	if !ok {
		return
	}
	if err := h.docs.SelectSection(id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "anchor": "section-" + strconv.Itoa(id)})
}

// SetSectionImage handles PUT /api/v1/sections/:id/image
func (h *DocumentHandlers) SetSectionImage(c *gin.Context) {
	id, ok := sectionID(c)
	if !ok {
		return
	}
	var req SetImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var err error
	switch req.Field {
	case "background", "bg":
		err = h.docs.SetSectionBackground(id, req.URL)
	case "":
		err = h.docs.SetSectionImage(id, "image", req.URL)
	default:
		err = h.docs.SetSectionImage(id, req.Field, req.URL)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respondCurrent(c, http.StatusOK)
}

// AddSection handles POST /api/v1/sections
func (h *DocumentHandlers) AddSection(c *gin.Context) {
	var req AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	id, err := h.docs.AddSection(req.Type, req.After)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// RemoveSection handles DELETE /api/v1/sections/:id
func (h *DocumentHandlers) RemoveSection(c *gin.Context) {
	id, ok := sectionID(c)
	if !ok {
		return
	}
	if err := h.docs.RemoveSection(id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveSection handles POST /api/v1/sections/:id/move
func (h *DocumentHandlers) MoveSection(c *gin.Context) {
	id, ok := sectionID(c)
	if !ok {
		return
	}
	var req MoveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.docs.MoveSection(id, req.Delta); err != nil {
		h.fail(c, err)
		return
	}
	h.respondCurrent(c, http.StatusOK)
}

// AddItem handles POST /api/v1/sections/:id/items
func (h *DocumentHandlers) AddItem(c *gin.Context) {
	id, ok := sectionID(c)
	if !ok {
		return
	}
	itemID, err := h.docs.AddItem(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": itemID})
}

func (h *DocumentHandlers) respondCurrent(c *gin.Context, status int) {
	doc, err := h.docs.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, doc)
}

func (h *DocumentHandlers) fail(c *gin.Context, err error) {
	if errors.Is(err, services.ErrSectionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.logger.Content().Warn("Document request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func sectionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid section id"})
		return 0, false
	}
	return id, true
}


package controller

import (
	"net/http"
	"time"

	"webland/internal/models"
	"webland/internal/store"
	"webland/pkg/sanitize"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type noteRequest struct {
	Text string `json:"text" binding:"required"`
}

// The generic notes and the crypto-tab notes are the same widget over
// two collections, so both route sets share these handlers.

func listNotes(collection *store.Collection[models.Note]) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		stored := collection.Load()

		// Newest first; storage keeps insertion order.
		notes := make([]models.Note, 0, len(stored))
		for i := len(stored) - 1; i >= 0; i-- {
			notes = append(notes, stored[i])
		}
		ctx.JSON(http.StatusOK, notes)
	}
}

func createNote(collection *store.Collection[models.Note]) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req noteRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequestWithDetails(ctx, "invalid input", err.Error())
			return
		}

		text := sanitize.Text(req.Text)
		if text == "" {
			badRequest(ctx, "note text cannot be empty")
			return
		}

		note := models.Note{
			ID:   uuid.NewString(),
			Text: text,
			Date: time.Now(),
		}
		if err := collection.Add(note); err != nil {
			internalError(ctx, "failed to save note")
			return
		}
		ctx.JSON(http.StatusCreated, note)
	}
}

func updateNote(collection *store.Collection[models.Note]) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req noteRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequestWithDetails(ctx, "invalid input", err.Error())
			return
		}

		text := sanitize.Text(req.Text)
		if text == "" {
			badRequest(ctx, "note text cannot be empty")
			return
		}

		id := ctx.Param("id")
		err := collection.Update(id, func(note *models.Note) {
			note.Text = text
		})
		if errors.Is(err, store.ErrNotFound) {
			notFound(ctx, "note not found")
			return
		}
		if err != nil {
			internalError(ctx, "failed to update note")
			return
		}

		note, _ := collection.Get(id)
		ctx.JSON(http.StatusOK, note)
	}
}

func deleteNote(collection *store.Collection[models.Note]) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := collection.Remove(ctx.Param("id")); err != nil {
			internalError(ctx, "failed to delete note")
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}

// ListNotes godoc
// @Summary List notes
// @Tags notes
// @Produce json
// @Success 200 {array} models.Note
// @Router /api/notes [get]
func (c *Controller) ListNotes(ctx *gin.Context) {
	listNotes(c.collections.Notes)(ctx)
}

// CreateNote godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Param note body noteRequest true "Note text"
// @Success 201 {object} models.Note
// @Failure 400 {object} APIError
// @Router /api/notes [post]
func (c *Controller) CreateNote(ctx *gin.Context) {
	createNote(c.collections.Notes)(ctx)
}

// UpdateNote godoc
// @Summary Edit a note's text
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body noteRequest true "Note text"
// @Success 200 {object} models.Note
// @Failure 404 {object} APIError
// @Router /api/notes/{id} [put]
func (c *Controller) UpdateNote(ctx *gin.Context) {
	updateNote(c.collections.Notes)(ctx)
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Param id path string true "Note ID"
// @Success 204
// @Router /api/notes/{id} [delete]
func (c *Controller) DeleteNote(ctx *gin.Context) {
	deleteNote(c.collections.Notes)(ctx)
}

// ListCryptoNotes godoc
// @Summary List crypto notes
// @Tags crypto
// @Produce json
// @Success 200 {array} models.Note
// @Router /api/crypto/notes [get]
func (c *Controller) ListCryptoNotes(ctx *gin.Context) {
	listNotes(c.collections.CryptoNotes)(ctx)
}

// CreateCryptoNote godoc
// @Summary Create a crypto note
// @Tags crypto
// @Accept json
// @Produce json
// @Param note body noteRequest true "Note text"
// @Success 201 {object} models.Note
// @Failure 400 {object} APIError
// @Router /api/crypto/notes [post]
func (c *Controller) CreateCryptoNote(ctx *gin.Context) {
	createNote(c.collections.CryptoNotes)(ctx)
}

// UpdateCryptoNote godoc
// @Summary Edit a crypto note's text
// @Tags crypto
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body noteRequest true "Note text"
// @Success 200 {object} models.Note
// @Failure 404 {object} APIError
// @Router /api/crypto/notes/{id} [put]
func (c *Controller) UpdateCryptoNote(ctx *gin.Context) {
	updateNote(c.collections.CryptoNotes)(ctx)
}

// DeleteCryptoNote godoc
// @Summary Delete a crypto note
// @Tags crypto
// @Param id path string true "Note ID"
// @Success 204
// @Router /api/crypto/notes/{id} [delete]
func (c *Controller) DeleteCryptoNote(ctx *gin.Context) {
	deleteNote(c.collections.CryptoNotes)(ctx)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtakagi/notes-api/internal/constants"
	"github.com/mtakagi/notes-api/internal/dto"
	apierrors "github.com/mtakagi/notes-api/internal/errors"
	"github.com/mtakagi/notes-api/internal/models"
	"github.com/mtakagi/notes-api/internal/services"
)

// NoteHandler coordinates note-related HTTP handlers. Notes are addressed
// either by numeric id or by title; a numeric path key selects the id form.
type NoteHandler struct {
	noteService *services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// ListNotes returns every note, unfiltered and unpaginated.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.noteService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch notes")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTOs(notes))
}

// GetNote returns a note addressed by id or by title.
func (h *NoteHandler) GetNote(c *gin.Context) {
	note, err := h.findByKey(c.Param("key"))
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*note))
}

// CreateNote creates a note under the title given in the path. A note
// created this way has no owner.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	title := c.Param("key")
	if len(title) > constants.MaxTitleLength {
		apierrors.BadRequest(c, "Title is too long")
		return
	}

	type CreateNoteRequest struct {
		Body string `json:"body" binding:"required,max=100"`
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.noteService.CreateByTitle(title, req.Body)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*note))
}

// UpdateNote overwrites the provided fields of a note addressed by id or
// by title.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	note, err := h.findByKey(c.Param("key"))
	if err != nil {
		respondNoteError(c, err)
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input services.UpdateInput
	if title, ok := rawReq["title"]; ok {
		titleStr, ok := title.(string)
		if !ok || titleStr == "" || len(titleStr) > constants.MaxTitleLength {
			apierrors.BadRequest(c, "Invalid title")
			return
		}
		input.Title = &titleStr
	}
	if body, ok := rawReq["body"]; ok {
		bodyStr, ok := body.(string)
		if !ok || bodyStr == "" || len(bodyStr) > constants.MaxBodyLength {
			apierrors.BadRequest(c, "Invalid body")
			return
		}
		input.Body = &bodyStr
	}

	updated, err := h.noteService.Update(note, input)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteDTO(*updated))
}

// DeleteNote removes a note addressed by numeric id.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("key"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	if err := h.noteService.Delete(id); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note deleted successfully",
	})
}

func (h *NoteHandler) findByKey(key string) (*models.Note, error) {
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		return h.noteService.GetByID(id)
	}
	return h.noteService.GetByTitle(key)
}

func respondNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleTaken):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

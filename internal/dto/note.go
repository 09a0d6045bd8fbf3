package dto

import (
	"github.com/mtakagi/notes-api/internal/models"
)

// NoteDTO represents a note in API responses
type NoteDTO struct {
	ID     uint64  `json:"id"`
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	UserID *uint64 `json:"user_id,omitempty"`
}

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note) NoteDTO {
	return NoteDTO{
		ID:     note.ID,
		Title:  note.Title,
		Body:   note.Body,
		UserID: note.UserID,
	}
}

// ToNoteDTOs converts a slice of Note models to DTOs
func ToNoteDTOs(notes []models.Note) []NoteDTO {
	dtos := make([]NoteDTO, len(notes))
	for i, note := range notes {
		dtos[i] = ToNoteDTO(note)
	}
	return dtos
}

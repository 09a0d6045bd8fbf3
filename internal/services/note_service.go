package services

import (
	"errors"
	"fmt"

	"github.com/mtakagi/notes-api/internal/models"
	"github.com/mtakagi/notes-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrTitleTaken   = errors.New("a note with that title already exists")
)

// NoteService handles note business logic.
type NoteService struct {
	noteRepo repository.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
	}
}

// GetByID retrieves a note by ID.
func (s *NoteService) GetByID(id uint64) (*models.Note, error) {
	note, err := s.noteRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return note, nil
}

// GetByTitle retrieves a note by its title.
func (s *NoteService) GetByTitle(title string) (*models.Note, error) {
	note, err := s.noteRepo.FindByTitle(title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return note, nil
}

// List retrieves every note, unfiltered.
func (s *NoteService) List() ([]models.Note, error) {
	return s.noteRepo.List()
}

// CreateByTitle inserts a new note under the given title. The title must not
// be in use yet; the check happens at creation time only, so two concurrent
// creates with the same title can still race past it.
func (s *NoteService) CreateByTitle(title, body string) (*models.Note, error) {
	if _, err := s.noteRepo.FindByTitle(title); err == nil {
		return nil, ErrTitleTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check title: %w", err)
	}

	note := &models.Note{
		Title: title,
		Body:  body,
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// UpdateInput carries the fields of a partial note update. Nil fields are
// left untouched.
type UpdateInput struct {
	Title *string
	Body  *string
}

// Update overwrites the provided fields of an existing note and persists it.
func (s *NoteService) Update(note *models.Note, input UpdateInput) (*models.Note, error) {
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Body != nil {
		note.Body = *input.Body
	}

	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// Delete removes a note by ID.
func (s *NoteService) Delete(id uint64) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	if err := s.noteRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}

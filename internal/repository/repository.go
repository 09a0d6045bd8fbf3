package repository

import (
	"github.com/mtakagi/notes-api/internal/models"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create inserts a new note
	Create(note *models.Note) error

	// FindByID finds a note by ID
	FindByID(id uint64) (*models.Note, error)

	// FindByTitle finds a note by its title
	FindByTitle(title string) (*models.Note, error)

	// List retrieves every note
	List() ([]models.Note, error)

	// Update persists changes to a note
	Update(note *models.Note) error

	// Delete removes a note row
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// List retrieves every user
	List() ([]models.User, error)

	// Delete removes a user together with the notes the user owns
	Delete(id uint64) error
}

package repository

import (
	"github.com/mtakagi/notes-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create inserts a new note
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// FindByID finds a note by ID
func (r *GormNoteRepository) FindByID(id uint64) (*models.Note, error) {
	var note models.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByTitle finds a note by its title. Titles have no database-level
// unique constraint, so this returns the oldest match if duplicates exist.
func (r *GormNoteRepository) FindByTitle(title string) (*models.Note, error) {
	var note models.Note
	if err := r.db.Where("title = ?", title).Order("id").First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// List retrieves every note
func (r *GormNoteRepository) List() ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.Order("id").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Update persists changes to a note
func (r *GormNoteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// Delete removes a note row
func (r *GormNoteRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Note{}, id).Error
}

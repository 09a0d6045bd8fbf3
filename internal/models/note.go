package models

import (
	"time"
)

// Note is a titled text record, optionally owned by a user. Notes created
// through the title endpoint carry no owner, so UserID stays nullable.
type Note struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(20);not null" json:"title"`
	Body      string    `gorm:"type:varchar(100);not null" json:"body"`
	UserID    *uint64   `gorm:"index" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// Package entity defines the domain models for the content feature.
package entity

import "time"

// DefaultStatus is the status assigned to newly created content
// when the caller does not specify one.
const DefaultStatus = "draft"

// Content represents one authored document.
// A document always belongs to exactly one user; AuthorID is set at
// creation from the authenticated caller and never reassigned.
type Content struct {
	// ID is the unique identifier for the document.
	ID uint `gorm:"primaryKey"`

	// Title is the document title. Must not be empty.
	Title string `gorm:"size:255;not null"`

	// Body is the document body text. May contain markup and be arbitrarily long.
	Body string `gorm:"column:content;type:text;not null"`

	// AuthorID references the owning user.
	AuthorID uint `gorm:"not null;index"`

	// Status is a free-form workflow tag ("draft", "published", ...).
	// No enumeration is enforced at this level.
	Status string `gorm:"size:50;not null;default:draft"`

	// FactCheckScore is the last attached AI fact-check score in [0,100].
	// Nil until a fact-check result has been attached.
	FactCheckScore *int `gorm:"column:fact_check_score"`

	// CreatedAt is the timestamp when the document was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last mutation. Equal to CreatedAt
	// right after creation, refreshed on every update.
	UpdatedAt time.Time
}

// TableName maps the entity onto the contents table.
func (Content) TableName() string {
	return "contents"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Plot board limits, enforced at the form boundary.
const (
	MinPerRow          = 1
	MaxPerRow          = 32
	DefaultPerRow      = 2
	MaxDescriptionSize = 4000
)

// Board is a story board: a grid of sequences and the cards inside them.
type Board struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PerRow      int    `gorm:"default:2" json:"per_row"`

	// Relationships
	Owner     User       `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Sequences []Sequence `gorm:"foreignKey:BoardID" json:"sequences,omitempty"`
	Cards     []Card     `gorm:"foreignKey:BoardID" json:"cards,omitempty"`
}

// Sequence is a container for cards within a board.
type Sequence struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BoardID     uint   `gorm:"not null;index" json:"board_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// Relationships
	Cards []Card `gorm:"foreignKey:SequenceID" json:"cards,omitempty"`
}

// Card is a single plot element. It always belongs to a board and optionally
// to a sequence within it; Position orders cards inside their sequence.
// Deleting a sequence orphans its cards back onto the board, it never deletes
// them.
type Card struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BoardID     uint   `gorm:"not null;index" json:"board_id"`
	SequenceID  *uint  `gorm:"index" json:"sequence_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"` // HTML, stored as submitted
	Position    int    `gorm:"default:0" json:"position"`
}

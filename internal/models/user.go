package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account that owns projects, work sessions, and boards.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	// Relationships
	Projects []Project     `gorm:"foreignKey:UserID" json:"-"`
	Sessions []WorkSession `gorm:"foreignKey:UserID" json:"-"`
	Boards   []Board       `gorm:"foreignKey:OwnerID" json:"-"`
}

// AuthToken backs a login cookie. Tokens are random and opaque; holding one
// is holding the session.
type AuthToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Token  string `gorm:"uniqueIndex;not null" json:"-"`
	UserID uint   `gorm:"not null;index" json:"user_id"`

	User User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

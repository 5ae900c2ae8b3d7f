package models

import "time"

// Category groups assets for inventory reporting.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`

	Assets []Asset `gorm:"foreignKey:CategoryID" json:"assets,omitempty"`
}

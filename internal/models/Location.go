package models

import "time"

type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	Assets []Asset `gorm:"foreignKey:LocationID" json:"assets,omitempty"`
}

package models

import "time"

type Manufacturer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	URL          string `json:"url"`
	SupportURL   string `json:"support_url"`
	SupportPhone string `json:"support_phone"`
	SupportEmail string `json:"support_email"`

	Assets []Asset `gorm:"foreignKey:ManufacturerID" json:"assets,omitempty"`
}

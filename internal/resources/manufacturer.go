package resources

import (
	"time"

	"mtop_registry/internal/models"
)

type ManufacturerResource struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	SupportURL   string    `json:"support_url"`
	SupportPhone string    `json:"support_phone"`
	SupportEmail string    `json:"support_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewManufacturerResource(manufacturer models.Manufacturer) ManufacturerResource {
	return ManufacturerResource{
		ID:           manufacturer.ID,
		Name:         manufacturer.Name,
		URL:          manufacturer.URL,
		SupportURL:   manufacturer.SupportURL,
		SupportPhone: manufacturer.SupportPhone,
		SupportEmail: manufacturer.SupportEmail,
		CreatedAt:    manufacturer.CreatedAt,
		UpdatedAt:    manufacturer.UpdatedAt,
	}
}

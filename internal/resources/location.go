package resources

import (
	"time"

	"mtop_registry/internal/models"
)

type LocationResource struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLocationResource(location models.Location) LocationResource {
	return LocationResource{
		ID:        location.ID,
		Name:      location.Name,
		Address:   location.Address,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}
}

package resources

import (
	"time"

	"mtop_registry/internal/models"
)

type TodaResource struct {
	ID             uint      `json:"id"`
	TodaName       string    `json:"toda_name"`
	TodaPresident  string    `json:"toda_president"`
	DateRegistered string    `json:"date_registered"`
	TodaStatus     string    `json:"toda_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewTodaResource(toda models.Toda) TodaResource {
	return TodaResource{
		ID:             toda.ID,
		TodaName:       toda.TodaName,
		TodaPresident:  toda.TodaPresident,
		DateRegistered: DateOnly(toda.DateRegistered),
		TodaStatus:     toda.TodaStatus,
		CreatedAt:      toda.CreatedAt,
		UpdatedAt:      toda.UpdatedAt,
	}
}

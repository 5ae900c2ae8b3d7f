package resources

import (
	"time"

	"mtop_registry/internal/models"
)

type DriverResource struct {
	ID                  uint      `json:"id"`
	DriverFullname      string    `json:"driver_fullname"`
	DriverLicenseNumber string    `json:"driver_license_number"`
	ExpirationDate      string    `json:"expiration_date"`
	DriverContactNumber string    `json:"driver_contact_number"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func NewDriverResource(driver models.Driver) DriverResource {
	return DriverResource{
		ID:                  driver.ID,
		DriverFullname:      driver.DriverFullname,
		DriverLicenseNumber: driver.DriverLicenseNumber,
		ExpirationDate:      DateOnly(driver.ExpirationDate),
		DriverContactNumber: driver.DriverContactNumber,
		CreatedAt:           driver.CreatedAt,
		UpdatedAt:           driver.UpdatedAt,
	}
}

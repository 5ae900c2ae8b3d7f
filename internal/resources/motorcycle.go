package resources

import (
	"time"

	"mtop_registry/internal/models"
)

type MotorcycleResource struct {
	ID             uint      `json:"id"`
	PlateNumber    string    `json:"plate_number"`
	MotorNumber    string    `json:"motor_number"`
	ChassisNumber  string    `json:"chassis_number"`
	Make           string    `json:"make"`
	YearModel      string    `json:"year_model"`
	RegisteredDate string    `json:"registered_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewMotorcycleResource(motorcycle models.Motorcycle) MotorcycleResource {
	return MotorcycleResource{
		ID:             motorcycle.ID,
		PlateNumber:    motorcycle.PlateNumber,
		MotorNumber:    motorcycle.MotorNumber,
		ChassisNumber:  motorcycle.ChassisNumber,
		Make:           motorcycle.Make,
		YearModel:      motorcycle.YearModel,
		RegisteredDate: DateOnly(motorcycle.RegisteredDate),
		CreatedAt:      motorcycle.CreatedAt,
		UpdatedAt:      motorcycle.UpdatedAt,
	}
}

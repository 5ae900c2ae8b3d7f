package resources

import (
	"time"

	"mtop_registry/internal/models"
)

// OperatorResource flattens the operator's required relations onto the row.
// The caller must have preloaded Driver, Motorcycle and Toda; projecting an
// operator without them is a programming error (the dashboard uses the
// null-safe row in the stats package instead).
type OperatorResource struct {
	ID                  uint      `json:"id"`
	Fullname            string    `json:"fullname"`
	Address             string    `json:"address"`
	EmailAddress        string    `json:"email_address"`
	ContactNumber       string    `json:"contact_number"`
	DriverID            uint      `json:"driver_id"`
	DriverFullname      string    `json:"driver_fullname"`
	DriverLicenseNumber string    `json:"driver_license_number"`
	MotorcycleID        uint      `json:"motorcycle_id"`
	PlateNumber         string    `json:"plate_number"`
	MtopNumber          string    `json:"mtop_number"`
	TodaID              uint      `json:"toda_id"`
	TodaName            string    `json:"toda_name"`
	DateRegistered      string    `json:"date_registered"`
	DateLastPaid        *string   `json:"date_last_paid"`
	PermitStatus        string    `json:"permit_status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func NewOperatorResource(operator models.Operator) OperatorResource {
	return OperatorResource{
		ID:                  operator.ID,
		Fullname:            operator.Fullname,
		Address:             operator.Address,
		EmailAddress:        operator.EmailAddress,
		ContactNumber:       operator.ContactNumber,
		DriverID:            operator.DriverID,
		DriverFullname:      operator.Driver.DriverFullname,
		DriverLicenseNumber: operator.Driver.DriverLicenseNumber,
		MotorcycleID:        operator.MotorcycleID,
		PlateNumber:         operator.Motorcycle.PlateNumber,
		MtopNumber:          operator.MtopNumber,
		TodaID:              operator.TodaID,
		TodaName:            operator.Toda.TodaName,
		DateRegistered:      DateOnly(operator.DateRegistered),
		DateLastPaid:        DateOnlyPtr(operator.DateLastPaid),
		PermitStatus:        operator.PermitStatus,
		CreatedAt:           operator.CreatedAt,
		UpdatedAt:           operator.UpdatedAt,
	}
}

package stats

import (
	"time"

	"gorm.io/gorm"

	"mtop_registry/internal/models"
	"mtop_registry/internal/resources"
)

// FallbackLabel stands in for display fields whose related record is missing,
// e.g. an operator whose driver row was never linked. Id fields are left as
// stored; only display text gets the sentinel.
const FallbackLabel = "N/A"

// OperatorRow is the null-safe dashboard projection of an operator.
type OperatorRow struct {
	ID             uint      `json:"id"`
	Fullname       string    `json:"fullname"`
	EmailAddress   string    `json:"email_address"`
	ContactNumber  string    `json:"contact_number"`
	DriverFullname string    `json:"driver_fullname"`
	PlateNumber    string    `json:"plate_number"`
	MtopNumber     string    `json:"mtop_number"`
	TodaName       string    `json:"toda_name"`
	DateRegistered string    `json:"date_registered"`
	PermitStatus   string    `json:"permit_status"`
	DateLastPaid   *string   `json:"date_last_paid"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecentOperators fetches the most recently created operators with their
// relations attached and projects them null-safely.
func RecentOperators(db *gorm.DB, limit int) ([]OperatorRow, error) {
	var operators []models.Operator
	err := db.
		Preload("Driver").
		Preload("Motorcycle").
		Preload("Toda").
		Order("created_at DESC").
		Limit(limit).
		Find(&operators).Error
	if err != nil {
		return nil, err
	}

	rows := make([]OperatorRow, 0, len(operators))
	for _, operator := range operators {
		rows = append(rows, NewOperatorRow(operator))
	}
	return rows, nil
}

// NewOperatorRow projects a single operator, substituting FallbackLabel for
// any display field whose relation is absent.
func NewOperatorRow(operator models.Operator) OperatorRow {
	row := OperatorRow{
		ID:             operator.ID,
		Fullname:       operator.Fullname,
		EmailAddress:   operator.EmailAddress,
		ContactNumber:  operator.ContactNumber,
		DriverFullname: FallbackLabel,
		PlateNumber:    FallbackLabel,
		MtopNumber:     operator.MtopNumber,
		TodaName:       FallbackLabel,
		DateRegistered: resources.DateOnly(operator.DateRegistered),
		PermitStatus:   operator.PermitStatus,
		DateLastPaid:   resources.DateOnlyPtr(operator.DateLastPaid),
		CreatedAt:      operator.CreatedAt,
	}
	if operator.Driver != nil {
		row.DriverFullname = operator.Driver.DriverFullname
	}
	if operator.Motorcycle != nil {
		row.PlateNumber = operator.Motorcycle.PlateNumber
	}
	if operator.Toda != nil {
		row.TodaName = operator.Toda.TodaName
	}
	return row
}

package models

import "time"

type Motorcycle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	PlateNumber    string    `gorm:"uniqueIndex;not null" json:"plate_number"`
	MotorNumber    string    `json:"motor_number"`
	ChassisNumber  string    `json:"chassis_number"`
	Make           string    `json:"make"`
	YearModel      string    `json:"year_model"`
	RegisteredDate time.Time `json:"registered_date"`

	Operator *Operator `gorm:"foreignKey:MotorcycleID" json:"operator,omitempty"`
}

// Age returns full years since the motorcycle was registered.
func (m *Motorcycle) Age() int {
	years := 0
	for t := m.RegisteredDate.AddDate(1, 0, 0); !t.After(time.Now()); t = t.AddDate(1, 0, 0) {
		years++
	}
	return years
}

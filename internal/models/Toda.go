package models

import "time"

const (
	TodaStatusActive   = "active"
	TodaStatusInactive = "inactive"
)

// Toda is a Tricycle Operators and Drivers Association, the organization an
// operator's permit is filed under.
type Toda struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TodaName       string    `gorm:"uniqueIndex;not null" json:"toda_name"`
	TodaPresident  string    `json:"toda_president"`
	DateRegistered time.Time `json:"date_registered"`
	TodaStatus     string    `gorm:"not null;default:active" json:"toda_status"`

	Operators []Operator `gorm:"foreignKey:TodaID" json:"operators,omitempty"`
}

// TableName keeps the singular table name used by the registry schema.
func (Toda) TableName() string {
	return "toda"
}

func (t *Toda) IsActive() bool {
	return t.TodaStatus == TodaStatusActive
}

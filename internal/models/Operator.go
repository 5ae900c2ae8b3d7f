package models

import "time"

// Permit lifecycle states for an operator's MTOP.
const (
	PermitStatusNew    = "new"
	PermitStatusRenew  = "renew"
	PermitStatusRetire = "retire"
)

// PermitStatuses returns every valid permit status.
func PermitStatuses() []string {
	return []string{PermitStatusNew, PermitStatusRenew, PermitStatusRetire}
}

// Operator is a tricycle operator permit record. Driver, Motorcycle and Toda
// are required parents; deleting any of them removes the operator as well.
type Operator struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Fullname      string `gorm:"not null" json:"fullname"`
	Address       string `gorm:"not null" json:"address"`
	EmailAddress  string `gorm:"uniqueIndex;not null" json:"email_address"`
	ContactNumber string `json:"contact_number"`

	DriverID     uint `gorm:"index;not null" json:"driver_id"`
	MotorcycleID uint `gorm:"index;not null" json:"motorcycle_id"`
	TodaID       uint `gorm:"index;not null" json:"toda_id"`

	MtopNumber     string     `gorm:"uniqueIndex;not null" json:"mtop_number"`
	DateRegistered time.Time  `json:"date_registered"`
	DateLastPaid   *time.Time `json:"date_last_paid"`
	PermitStatus   string     `gorm:"not null;default:new" json:"permit_status"`

	Driver     *Driver     `gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"driver,omitempty"`
	Motorcycle *Motorcycle `gorm:"foreignKey:MotorcycleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"motorcycle,omitempty"`
	Toda       *Toda       `gorm:"foreignKey:TodaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"toda,omitempty"`
}

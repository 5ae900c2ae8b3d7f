package models

import "time"

type Driver struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DriverFullname      string    `gorm:"not null" json:"driver_fullname"`
	DriverLicenseNumber string    `gorm:"uniqueIndex;not null" json:"driver_license_number"`
	ExpirationDate      time.Time `json:"expiration_date"`
	DriverContactNumber string    `json:"driver_contact_number"`

	Operator *Operator `gorm:"foreignKey:DriverID" json:"operator,omitempty"`
}

// IsLicenseExpired reports whether the driver's license expiration date has
// already passed.
func (d *Driver) IsLicenseExpired() bool {
	return d.ExpirationDate.Before(time.Now())
}

// IsLicenseExpiringSoon reports whether the license expires within the given
// number of days from now.
func (d *Driver) IsLicenseExpiringSoon(days int) bool {
	now := time.Now()
	return d.ExpirationDate.After(now) && d.ExpirationDate.Before(now.AddDate(0, 0, days))
}

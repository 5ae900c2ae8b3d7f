package models

import "time"

// Staff roles. Deletes are restricted to admins.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:staff" json:"role"`

	// Assets currently assigned to this user.
	Assets []Asset `gorm:"foreignKey:AssignedToUserID" json:"assets,omitempty"`
}

package models

import "time"

// Asset lifecycle statuses. Stored and served as the raw string; use
// AssetStatusLabel for display text.
const (
	AssetStatusDeployed    = "Deployed"
	AssetStatusInStorage   = "In Storage"
	AssetStatusMaintenance = "Maintenance"
	AssetStatusRetired     = "Retired"
	AssetStatusBroken      = "Broken"
)

// AssetStatuses returns every valid asset status.
func AssetStatuses() []string {
	return []string{
		AssetStatusDeployed,
		AssetStatusInStorage,
		AssetStatusMaintenance,
		AssetStatusRetired,
		AssetStatusBroken,
	}
}

// AssetStatusLabel maps a stored status to its human-readable display label.
func AssetStatusLabel(status string) string {
	if status == AssetStatusMaintenance {
		return "Under Maintenance"
	}
	return status
}

// Asset is a tracked inventory item. All parent references are nullable and
// set to null when the parent record is deleted.
type Asset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CategoryID       *uint `gorm:"index" json:"category_id"`
	LocationID       *uint `gorm:"index" json:"location_id"`
	ManufacturerID   *uint `gorm:"index" json:"manufacturer_id"`
	AssignedToUserID *uint `gorm:"index" json:"assigned_to_user_id"`

	AssetTag      string    `gorm:"uniqueIndex;not null" json:"asset_tag"`
	Name          string    `gorm:"not null" json:"name"`
	SerialNumber  string    `json:"serial_number"`
	ModelName     string    `json:"model_name"`
	PurchaseDate  time.Time `json:"purchase_date"`
	PurchasePrice float64   `json:"purchase_price"`
	Status        string    `gorm:"not null" json:"status"`
	Notes         string    `json:"notes"`

	Category     *Category     `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
	Location     *Location     `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location,omitempty"`
	Manufacturer *Manufacturer `gorm:"foreignKey:ManufacturerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"manufacturer,omitempty"`
	AssignedTo   *User         `gorm:"foreignKey:AssignedToUserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"assigned_to,omitempty"`
}

package resources

import (
	"time"

	"mtop_registry/internal/models"
)

// AssetResource flattens the asset's nullable parents onto the row. The
// relation name fields stay null when the foreign key is null.
type AssetResource struct {
	ID               uint      `json:"id"`
	AssetTag         string    `json:"asset_tag"`
	Name             string    `json:"name"`
	SerialNumber     string    `json:"serial_number"`
	ModelName        string    `json:"model_name"`
	PurchaseDate     string    `json:"purchase_date"`
	PurchasePrice    float64   `json:"purchase_price"`
	Status           string    `json:"status"`
	StatusLabel      string    `json:"status_label"`
	Notes            string    `json:"notes"`
	CategoryID       *uint     `json:"category_id"`
	CategoryName     *string   `json:"category_name"`
	LocationID       *uint     `json:"location_id"`
	LocationName     *string   `json:"location_name"`
	ManufacturerID   *uint     `json:"manufacturer_id"`
	ManufacturerName *string   `json:"manufacturer_name"`
	AssignedToUserID *uint     `json:"assigned_to_user_id"`
	AssignedToName   *string   `json:"assigned_to_name"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewAssetResource(asset models.Asset) AssetResource {
	r := AssetResource{
		ID:               asset.ID,
		AssetTag:         asset.AssetTag,
		Name:             asset.Name,
		SerialNumber:     asset.SerialNumber,
		ModelName:        asset.ModelName,
		PurchaseDate:     DateOnly(asset.PurchaseDate),
		PurchasePrice:    asset.PurchasePrice,
		Status:           asset.Status,
		StatusLabel:      models.AssetStatusLabel(asset.Status),
		Notes:            asset.Notes,
		CategoryID:       asset.CategoryID,
		LocationID:       asset.LocationID,
		ManufacturerID:   asset.ManufacturerID,
		AssignedToUserID: asset.AssignedToUserID,
		CreatedAt:        asset.CreatedAt,
		UpdatedAt:        asset.UpdatedAt,
	}
	if asset.Category != nil {
		r.CategoryName = &asset.Category.Name
	}
	if asset.Location != nil {
		r.LocationName = &asset.Location.Name
	}
	if asset.Manufacturer != nil {
		r.ManufacturerName = &asset.Manufacturer.Name
	}
	if asset.AssignedTo != nil {
		r.AssignedToName = &asset.AssignedTo.Name
	}
	return r
}

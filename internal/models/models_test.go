package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mtop_registry/internal/models"
)

func TestDriverLicenseExpiry(t *testing.T) {
	expired := models.Driver{ExpirationDate: time.Now().AddDate(0, 0, -1)}
	assert.True(t, expired.IsLicenseExpired())
	assert.False(t, expired.IsLicenseExpiringSoon(30))

	soon := models.Driver{ExpirationDate: time.Now().AddDate(0, 0, 10)}
	assert.False(t, soon.IsLicenseExpired())
	assert.True(t, soon.IsLicenseExpiringSoon(30))
	assert.False(t, soon.IsLicenseExpiringSoon(5))
}

func TestMotorcycleAge(t *testing.T) {
	m := models.Motorcycle{RegisteredDate: time.Now().AddDate(-3, 0, -10)}
	assert.Equal(t, 3, m.Age())

	fresh := models.Motorcycle{RegisteredDate: time.Now().AddDate(0, -6, 0)}
	assert.Equal(t, 0, fresh.Age())
}

func TestTodaIsActive(t *testing.T) {
	assert.True(t, (&models.Toda{TodaStatus: models.TodaStatusActive}).IsActive())
	assert.False(t, (&models.Toda{TodaStatus: models.TodaStatusInactive}).IsActive())
}

func TestAssetStatusLabel(t *testing.T) {
	assert.Equal(t, "Under Maintenance", models.AssetStatusLabel(models.AssetStatusMaintenance))
	assert.Equal(t, "Deployed", models.AssetStatusLabel(models.AssetStatusDeployed))
}

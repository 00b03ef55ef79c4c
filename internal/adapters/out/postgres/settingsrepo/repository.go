// Package settingsrepo loads the courier integration settings from the
// database. Settings live in a single operator-managed row and are read
// fresh for every operation, so rotation takes effect without a restart.
package settingsrepo

import (
	"context"
	"errors"

	"shop/internal/core/ports"

	"gorm.io/gorm"
)

// CourierSettingsDTO represents the single courier configuration row.
type CourierSettingsDTO struct {
	ID            uint   `gorm:"primaryKey"`
	APIKey        string `gorm:"type:varchar(128)"`
	APISecret     string `gorm:"type:varchar(128)"`
	HubID         string `gorm:"type:varchar(64)"`
	WebhookSecret string `gorm:"type:varchar(128)"`
	EnableB2C     bool   `gorm:"not null"`
	EnableB2B     bool   `gorm:"not null"`
	IsEnabled     bool   `gorm:"not null"`
}

// TableName specifies the database table name for courier settings.
func (CourierSettingsDTO) TableName() string {
	return "courier_settings"
}

// GormCourierSettingsProvider implements CourierSettingsProvider using
// GORM.
type GormCourierSettingsProvider struct {
	db *gorm.DB
}

// NewGormCourierSettingsProvider creates a settings provider over the
// main database connection.
func NewGormCourierSettingsProvider(db *gorm.DB) *GormCourierSettingsProvider {
	return &GormCourierSettingsProvider{db: db}
}

// Load reads the current settings row. An absent row is not an error:
// it reads as a disabled integration, which EnsureConfigured rejects
// with the proper NotConfiguredError at the call site.
func (p *GormCourierSettingsProvider) Load(ctx context.Context) (ports.CourierSettings, error) {
	var dto CourierSettingsDTO
	if err := p.db.WithContext(ctx).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CourierSettings{}, nil
		}
		return ports.CourierSettings{}, err
	}

	return ports.CourierSettings{
		APIKey:        dto.APIKey,
		APISecret:     dto.APISecret,
		HubID:         dto.HubID,
		WebhookSecret: dto.WebhookSecret,
		EnableB2C:     dto.EnableB2C,
		EnableB2B:     dto.EnableB2B,
		IsEnabled:     dto.IsEnabled,
	}, nil
}

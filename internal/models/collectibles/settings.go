package collectibles

import (
	"context"
	"errors"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"gorm.io/gorm"
)

// AppSettings is the single-row application configuration. The table holds
// at most one row; Upsert creates it on first write and updates it in
// place afterwards.
type AppSettings struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Currency       string    `gorm:"size:10;default:RUB" json:"currency" validate:"omitempty,max=10"`
	CurrencySymbol string    `gorm:"size:5;default:₽" json:"currency_symbol" validate:"omitempty,max=5"`
	Language       string    `gorm:"size:10;default:ru" json:"language" validate:"omitempty,max=10"`
	Theme          string    `gorm:"size:20;default:light" json:"theme" validate:"omitempty,oneof=light dark"`
	DateFormat     string    `gorm:"size:20;default:DD.MM.YYYY" json:"date_format" validate:"omitempty,max=20"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DefaultSettings is what readers see before the first write.
func DefaultSettings() AppSettings {
	return AppSettings{
		Currency:       "RUB",
		CurrencySymbol: "₽",
		Language:       "ru",
		Theme:          "light",
		DateFormat:     "DD.MM.YYYY",
	}
}

// GetSettings returns the settings row, or the defaults when none exists
// yet. Absence is not an error.
func GetSettings(ctx context.Context, db *gorm.DB) (*AppSettings, error) {
	var settings AppSettings
	if err := db.WithContext(ctx).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := DefaultSettings()
			return &defaults, nil
		}
		return nil, utils.StorageError(err)
	}
	return &settings, nil
}

// UpsertSettings writes the settings row idempotently: created when
// absent, updated in place otherwise. The row count never exceeds one.
func UpsertSettings(ctx context.Context, db *gorm.DB, settings *AppSettings) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing AppSettings
		err := tx.First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(settings).Error; err != nil {
				return utils.StorageError(err)
			}
			return nil
		}
		if err != nil {
			return utils.StorageError(err)
		}

		settings.ID = existing.ID
		if err := tx.Save(settings).Error; err != nil {
			return utils.StorageError(err)
		}
		return nil
	})
}

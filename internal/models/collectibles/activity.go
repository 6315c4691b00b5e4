package collectibles

import (
	"context"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionImport = "import"
	ActionExport = "export"
)

// ActivityLog is an append-only audit record. Rows are written once and
// never mutated; the only read path is listing by recency.
type ActivityLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Action     string    `gorm:"size:20;not null;index" json:"action" validate:"required,oneof=create update delete import export"`
	EntityType string    `gorm:"size:50;not null" json:"entity_type" validate:"required,max=50"`
	EntityName string    `gorm:"size:255" json:"entity_name" validate:"omitempty,max=255"`
	Details    string    `gorm:"size:500" json:"details" validate:"omitempty,max=500"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// LogActivity appends one audit record. Failures are returned for the
// caller to log; they never abort the operation being recorded.
func LogActivity(ctx context.Context, db *gorm.DB, action, entityType, entityName, details string) error {
	entry := ActivityLog{
		ID:         uuid.New(),
		Action:     action,
		EntityType: entityType,
		EntityName: entityName,
		Details:    details,
	}
	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// ListActivity returns the most recent entries, newest first.
func ListActivity(ctx context.Context, db *gorm.DB, limit int) ([]ActivityLog, error) {
	if limit < 1 {
		limit = 100
	}
	var entries []ActivityLog
	if err := db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return entries, nil
}

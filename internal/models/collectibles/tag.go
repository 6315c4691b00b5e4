package collectibles

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a named label with a display color. Collectibles reference tags
// by name only; a tag row existing is not required for the name to appear
// on a collectible.
type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name" validate:"required,max=50"`
	Color     string    `gorm:"size:7" json:"color" validate:"omitempty,hexcolor"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ListTags returns all tags ordered by name.
func ListTags(ctx context.Context, db *gorm.DB) ([]Tag, error) {
	var tags []Tag
	if err := db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return tags, nil
}

// CreateTag persists a new tag. Names are trimmed and must be unique.
func CreateTag(ctx context.Context, db *gorm.DB, tag *Tag) error {
	tag.Name = strings.TrimSpace(tag.Name)
	if tag.Name == "" {
		return utils.ValidationError("name is required")
	}
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Tag
		if err := tx.Where("name = ?", tag.Name).First(&existing).Error; err == nil {
			return utils.ValidationError("tag name already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.StorageError(err)
		}

		if err := tx.Create(tag).Error; err != nil {
			return utils.StorageError(err)
		}
		return nil
	})
}

// UpdateTag replaces the editable fields of a tag. Renaming a tag does not
// rewrite the name stored on collectibles.
func UpdateTag(ctx context.Context, db *gorm.DB, id uuid.UUID, tag *Tag) error {
	var existing Tag
	if err := db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Tag")
		}
		return utils.StorageError(err)
	}

	tag.ID = id
	tag.CreatedAt = existing.CreatedAt
	if err := db.WithContext(ctx).Save(tag).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// DeleteTag removes a tag. Collectibles carrying the name keep it.
func DeleteTag(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	result := db.WithContext(ctx).Delete(&Tag{}, "id = ?", id)
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Tag")
	}
	return nil
}

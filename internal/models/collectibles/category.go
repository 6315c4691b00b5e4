package collectibles

import (
	"context"
	"errors"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryTypeAll marks a category applicable to every collectible type;
// other categories only apply to collectibles of the matching type.
const CategoryTypeAll = "all"

// Category groups collectibles of one type (or all types).
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Type        string    `gorm:"size:20;not null;default:all" json:"type" validate:"required,oneof=coin banknote medal all"`
	Color       string    `gorm:"size:7" json:"color" validate:"omitempty,hexcolor"`
	Description string    `gorm:"size:500" json:"description" validate:"omitempty,max=500"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// AppliesTo reports whether the category may tag a collectible of the
// given type.
func (c *Category) AppliesTo(collectibleType string) bool {
	return c.Type == CategoryTypeAll || c.Type == collectibleType
}

// ListCategories returns all categories ordered by name.
func ListCategories(ctx context.Context, db *gorm.DB) ([]Category, error) {
	var categories []Category
	if err := db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return categories, nil
}

// ListCategoriesForType returns the categories selectable for one
// collectible type: those of that type plus the "all" categories.
func ListCategoriesForType(ctx context.Context, db *gorm.DB, collectibleType string) ([]Category, error) {
	var categories []Category
	if err := db.WithContext(ctx).
		Where("type = ? OR type = ?", collectibleType, CategoryTypeAll).
		Order("name").
		Find(&categories).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return categories, nil
}

// GetCategoryByID fetches one category.
func GetCategoryByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*Category, error) {
	var category Category
	if err := db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Category")
		}
		return nil, utils.StorageError(err)
	}
	return &category, nil
}

// CreateCategory persists a new category.
func CreateCategory(ctx context.Context, db *gorm.DB, category *Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.Type == "" {
		category.Type = CategoryTypeAll
	}
	if err := db.WithContext(ctx).Create(category).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// UpdateCategory replaces the editable fields of a category.
func UpdateCategory(ctx context.Context, db *gorm.DB, id uuid.UUID, category *Category) error {
	var existing Category
	if err := db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Category")
		}
		return utils.StorageError(err)
	}

	category.ID = id
	category.CreatedAt = existing.CreatedAt
	if err := db.WithContext(ctx).Save(category).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// DeleteCategory removes a category. Collectibles referencing it are left
// untouched; their category_id dangles and readers render them as
// uncategorized.
func DeleteCategory(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	result := db.WithContext(ctx).Delete(&Category{}, "id = ?", id)
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Category")
	}
	return nil
}

// Package collectibles holds the collectible registry: cataloged coins,
// banknotes, and medals with their categories, tags, activity log, and
// application settings.
package collectibles

import (
	"context"
	"errors"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collectible types.
const (
	TypeCoin     = "coin"
	TypeBanknote = "banknote"
	TypeMedal    = "medal"
)

// Statuses.
const (
	StatusInCollection = "in_collection"
	StatusForSale      = "for_sale"
	StatusSold         = "sold"
	StatusWishlist     = "wishlist"
)

// ConditionGrades is the numismatic wear scale, best to worst.
var ConditionGrades = []string{"PR", "UNC", "AU", "XF", "VF", "F", "VG", "G", "PO"}

// Collectible is a cataloged coin, banknote, or medal record.
//
// Tags are stored by name with no referential integrity against the Tag
// table, and CategoryID is a weak reference: the target category may have
// been deleted, and readers must tolerate that (rendering the item as
// uncategorized).
type Collectible struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	Type          string    `gorm:"size:20;not null;index" json:"type" validate:"required,oneof=coin banknote medal"`
	Country       string    `gorm:"size:100" json:"country" validate:"omitempty,max=100"`
	Year          *int      `json:"year" validate:"omitempty,plausible_year"`
	Denomination  string    `gorm:"size:50" json:"denomination" validate:"omitempty,max=50"`
	Currency      string    `gorm:"size:50" json:"currency" validate:"omitempty,max=50"`
	Material      string    `gorm:"size:100" json:"material" validate:"omitempty,max=100"`
	Weight        *float64  `json:"weight" validate:"omitempty,gte=0"`
	Diameter      *float64  `json:"diameter" validate:"omitempty,gte=0"`
	Mint          string    `gorm:"size:100" json:"mint" validate:"omitempty,max=100"`
	CatalogNumber string    `gorm:"size:50" json:"catalog_number" validate:"omitempty,max=50"`
	Condition     string    `gorm:"size:10" json:"condition" validate:"omitempty,oneof=PR UNC AU XF VF F VG G PO"`
	PurchasePrice *float64  `json:"purchase_price" validate:"omitempty,gte=0"`
	CurrentValue  *float64  `json:"current_value" validate:"omitempty,gte=0"`
	PurchaseDate  string    `gorm:"size:10" json:"purchase_date"`
	Status        string    `gorm:"size:20;default:in_collection;index" json:"status" validate:"omitempty,oneof=in_collection for_sale sold wishlist"`
	CategoryID    string    `gorm:"size:36;index" json:"category_id"`
	Tags          []string  `gorm:"serializer:json" json:"tags"`
	IsFavorite    bool      `gorm:"default:false;index" json:"is_favorite"`
	FrontImage    string    `gorm:"size:500" json:"front_image"`
	BackImage     string    `gorm:"size:500" json:"back_image"`
	Description   string    `gorm:"type:text" json:"description"`
	DescriptionEn string    `gorm:"type:text" json:"description_en"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Store is the repository contract for collectibles. The GORM
// implementation backs the API; the memory implementation backs tests.
type Store interface {
	List(ctx context.Context) ([]Collectible, error)
	ListByType(ctx context.Context, collectibleType string) ([]Collectible, error)
	Get(ctx context.Context, id uuid.UUID) (*Collectible, error)
	Create(ctx context.Context, item *Collectible) error
	Update(ctx context.Context, id uuid.UUID, item *Collectible) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GormStore persists collectibles in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// List returns all collectibles, newest first.
func (s *GormStore) List(ctx context.Context) ([]Collectible, error) {
	var items []Collectible
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return items, nil
}

// ListByType returns collectibles of one type, newest first.
func (s *GormStore) ListByType(ctx context.Context, collectibleType string) ([]Collectible, error) {
	var items []Collectible
	if err := s.db.WithContext(ctx).
		Where("type = ?", collectibleType).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, utils.StorageError(err)
	}
	return items, nil
}

func (s *GormStore) Get(ctx context.Context, id uuid.UUID) (*Collectible, error) {
	var item Collectible
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Collectible")
		}
		return nil, utils.StorageError(err)
	}
	return &item, nil
}

func (s *GormStore) Create(ctx context.Context, item *Collectible) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Status == "" {
		item.Status = StatusInCollection
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

// Update is a full replace of the editable fields.
func (s *GormStore) Update(ctx context.Context, id uuid.UUID, item *Collectible) error {
	var existing Collectible
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Collectible")
		}
		return utils.StorageError(err)
	}

	item.ID = id
	item.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return utils.StorageError(err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&Collectible{}, "id = ?", id)
	if result.Error != nil {
		return utils.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Collectible")
	}
	return nil
}

package models

import (
	"github.com/avododokhov/numisvault/internal/models/catalog"
	"github.com/avododokhov/numisvault/internal/models/collectibles"
	user "github.com/avododokhov/numisvault/internal/models/user"
)

// RegisterModels lists every table migrated at boot.
func RegisterModels() []interface{} {
	return []interface{}{
		&user.User{},
		&catalog.Country{},
		&catalog.Denomination{},
		&catalog.Material{},
		&catalog.Condition{},
		&catalog.Coin{},
		&catalog.Collection{},
		&catalog.CollectionCoin{},
		&collectibles.Collectible{},
		&collectibles.Category{},
		&collectibles.Tag{},
		&collectibles.ActivityLog{},
		&collectibles.AppSettings{},
	}
}

type (
	User           = user.User
	Coin           = catalog.Coin
	Country        = catalog.Country
	Denomination   = catalog.Denomination
	Material       = catalog.Material
	Condition      = catalog.Condition
	Collection     = catalog.Collection
	CollectionCoin = catalog.CollectionCoin
	Collectible    = collectibles.Collectible
	Category       = collectibles.Category
	Tag            = collectibles.Tag
	ActivityLog    = collectibles.ActivityLog
	AppSettings    = collectibles.AppSettings
)

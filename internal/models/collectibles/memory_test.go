package collectibles

import (
	"context"
	"testing"

	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateDefaults(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	item := Collectible{Name: "Denga", Type: TypeCoin}
	require.NoError(t, store.Create(ctx, &item))

	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, StatusInCollection, item.Status)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	item := Collectible{Name: "Poltina", Type: TypeCoin, Country: "Russia"}
	require.NoError(t, store.Create(ctx, &item))

	got, err := store.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poltina", got.Name)
	assert.Equal(t, "Russia", got.Country)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), uuid.New())

	var appErr *utils.CustomError
	require.True(t, utils.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}

func TestMemoryStoreListByType(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, it := range []Collectible{
		{Name: "Kopek", Type: TypeCoin},
		{Name: "Assignat", Type: TypeBanknote},
		{Name: "Ruble", Type: TypeCoin},
	} {
		it := it
		require.NoError(t, store.Create(ctx, &it))
	}

	coins, err := store.ListByType(ctx, TypeCoin)
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "Kopek", coins[0].Name)
	assert.Equal(t, "Ruble", coins[1].Name)
}

func TestMemoryStoreUpdatePreservesCreatedAt(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	item := Collectible{Name: "Before", Type: TypeCoin}
	require.NoError(t, store.Create(ctx, &item))
	created := item.CreatedAt

	replacement := Collectible{Name: "After", Type: TypeCoin}
	require.NoError(t, store.Update(ctx, item.ID, &replacement))

	got, err := store.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, created, got.CreatedAt)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	item := Collectible{Name: "Ephemeral", Type: TypeMedal}
	require.NoError(t, store.Create(ctx, &item))
	require.NoError(t, store.Delete(ctx, item.ID))

	_, err := store.Get(ctx, item.ID)
	assert.Error(t, err)

	assert.Error(t, store.Delete(ctx, item.ID))
}

func TestMemoryStoreSimulatedDeleteFailure(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	item := Collectible{Name: "Stuck", Type: TypeCoin}
	require.NoError(t, store.Create(ctx, &item))
	store.FailDelete[item.ID] = true

	err := store.Delete(ctx, item.ID)

	var appErr *utils.CustomError
	require.True(t, utils.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)

	// The item survives the failed delete.
	_, err = store.Get(ctx, item.ID)
	assert.NoError(t, err)
}

package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/avododokhov/numisvault/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the collectible routes against a memory store so the
// handlers run without Postgres or Redis.
func newTestApp(t *testing.T) (*fiber.App, *collectibles.MemoryStore) {
	t.Helper()

	log, err := logger.NewLogger(logger.WithOutputDir(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(log.Close)
	Logger = log

	store := collectibles.NewMemoryStore()
	Store = store
	Activity = nil

	app := fiber.New()
	app.Get("/api/collectibles", ListCollectibles)
	app.Get("/api/collectibles/:id", GetCollectible)
	app.Post("/api/collectibles/bulk", BulkCreateCollectibles)
	app.Post("/api/collectibles/bulk-delete", BulkDeleteCollectibles)
	return app, store
}

// recordActivity swaps the audit recorder for an in-memory capture.
func recordActivity(t *testing.T) *[]string {
	t.Helper()
	var actions []string
	Activity = func(ctx context.Context, action, entityType, entityName, details string) error {
		actions = append(actions, action)
		return nil
	}
	t.Cleanup(func() { Activity = nil })
	return &actions
}

func seedCollectibles(t *testing.T, store *collectibles.MemoryStore, n int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		item := collectibles.Collectible{Name: fmt.Sprintf("Coin %d", i), Type: collectibles.TypeCoin}
		require.NoError(t, store.Create(context.Background(), &item))
		ids = append(ids, item.ID)
	}
	return ids
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestListCollectiblesRejectsUnknownType(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/collectibles?type=stamp", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])
}

func TestListCollectiblesEmptyIsArray(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/collectibles", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	data, ok := body["data"].([]interface{})
	require.True(t, ok, "data must be an array even when empty")
	assert.Empty(t, data)
}

func TestGetCollectibleUnknownID(t *testing.T) {
	app, _ := newTestApp(t)

	url := "/api/collectibles/" + uuid.NewString()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, url, nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Collectible not found", body["error"])
}

func TestBulkDeleteRequiresIDs(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/collectibles/bulk-delete", bytes.NewBufferString(`{"ids":[]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBulkCreateCollectibles(t *testing.T) {
	app, store := newTestApp(t)
	actions := recordActivity(t)

	payload := `{"items":[
		{"name":"Denga 1704","type":"coin","country":"Russia"},
		{"name":"Assignat","type":"banknote"}
	]}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/collectibles/bulk", bytes.NewBufferString(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, collectibles.StatusInCollection, items[0].Status)

	// The batch lands as a single import entry in the activity log.
	assert.Equal(t, []string{collectibles.ActionImport}, *actions)
}

func TestBulkCreateRejectsInvalidItem(t *testing.T) {
	app, store := newTestApp(t)

	payload := `{"items":[{"name":"No type given"}]}`
	req := httptest.NewRequest(fiber.MethodPost, "/api/collectibles/bulk", bytes.NewBufferString(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	items, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBulkCreateRequiresItems(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/api/collectibles/bulk", bytes.NewBufferString(`{"items":[]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBulkDeletePartialFailure(t *testing.T) {
	app, store := newTestApp(t)
	ids := seedCollectibles(t, store, 3)
	store.FailDelete[ids[1]] = true

	payload, err := json.Marshal(map[string][]uuid.UUID{"ids": ids})
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/api/collectibles/bulk-delete", bytes.NewBuffer(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	// Reporting is all-or-nothing: one failed delete fails the request.
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])

	// Deletes that went through stay deleted; only the failed one remains.
	remaining, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, ids[1], remaining[0].ID)
}

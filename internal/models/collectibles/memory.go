package collectibles

import (
	"context"
	"sync"
	"time"

	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/google/uuid"
)

// MemoryStore is the in-memory Store implementation used as a test double.
// Insertion order is preserved so listing semantics match the database.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Collectible

	// FailDelete makes Delete fail for the given ids, for exercising
	// fan-out failure paths.
	FailDelete map[uuid.UUID]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{FailDelete: map[uuid.UUID]bool{}}
}

func (s *MemoryStore) List(ctx context.Context) ([]Collectible, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Collectible, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) ListByType(ctx context.Context, collectibleType string) ([]Collectible, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Collectible
	for _, item := range s.items {
		if item.Type == collectibleType {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Collectible, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, utils.NotFoundError("Collectible")
}

func (s *MemoryStore) Create(ctx context.Context, item *Collectible) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Status == "" {
		item.Status = StatusInCollection
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()
	s.items = append(s.items, *item)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, id uuid.UUID, item *Collectible) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			item.ID = id
			item.CreatedAt = s.items[i].CreatedAt
			item.UpdatedAt = time.Now()
			s.items[i] = *item
			return nil
		}
	}
	return utils.NotFoundError("Collectible")
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailDelete[id] {
		return utils.StorageError(errDeleteFailed)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundError("Collectible")
}

var errDeleteFailed = &deleteError{}

type deleteError struct{}

func (*deleteError) Error() string { return "simulated delete failure" }

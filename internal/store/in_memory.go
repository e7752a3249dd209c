package store

import (
	"context"
	"slices"
	"sync"

	perrors "github.com/MelissaPanduro/Producto/internal/errors"
	"github.com/MelissaPanduro/Producto/internal/model"
	"github.com/MelissaPanduro/Producto/internal/store/db"
)

// InMemoryStore implements ProductStore using a map. It is safe for concurrent use.
type InMemoryStore struct {
	mu       sync.RWMutex
	products map[int64]db.Product
	nextID   int64
}

// NewInMemoryStore creates an empty store whose first assigned ID is 1.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		products: make(map[int64]db.Product),
		nextID:   1,
	}
}

// FindByID retrieves a product by its ID.
func (s *InMemoryStore) FindByID(_ context.Context, id int64) (*db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindByIDAndStatus retrieves a product by its ID when the status matches.
func (s *InMemoryStore) FindByIDAndStatus(_ context.Context, id int64, status model.Status) (*db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok || p.Status != status.Code() {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products ordered by ID.
func (s *InMemoryStore) FindAll(_ context.Context) ([]db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]db.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b db.Product) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return list, nil
}

// Save inserts or replaces a product.
func (s *InMemoryStore) Save(_ context.Context, product db.Product) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == 0 {
		product.ID = s.nextID
		s.nextID++
	} else if _, exists := s.products[product.ID]; !exists {
		return nil, perrors.ErrProductNotFound
	}
	if product.Status == "" {
		product.Status = defaultStatus
	}
	s.products[product.ID] = product

	return &product, nil
}

// DeleteByID deletes a product by its ID. Missing products are ignored.
func (s *InMemoryStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, id)
	return nil
}

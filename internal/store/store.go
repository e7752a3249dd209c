// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/MelissaPanduro/Producto/internal/model"
	"github.com/MelissaPanduro/Producto/internal/store/db"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*db.Product, error)

	// FindByIDAndStatus retrieves a product only when it currently has the given status.
	// Returns ErrProductNotFound otherwise.
	FindByIDAndStatus(ctx context.Context, id int64, status model.Status) (*db.Product, error)

	// FindAll returns every stored product ordered by ID.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]db.Product, error)

	// Save inserts the product when its ID is zero and assigns a new ID; otherwise it replaces
	// every column of the existing row. An empty status is stored as active.
	// Returns ErrProductNotFound when replacing a row that does not exist.
	Save(ctx context.Context, product db.Product) (*db.Product, error)

	// DeleteByID removes a product by its ID. Deleting a missing product is not an error.
	DeleteByID(ctx context.Context, id int64) error
}

// defaultStatus is the code stored when a product is saved without a status.
var defaultStatus = model.StatusActive.Code()

var (
	_ ProductStore = (*PgStore)(nil)
	_ ProductStore = (*InMemoryStore)(nil)
)

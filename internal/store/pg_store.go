package store

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/MelissaPanduro/Producto/internal/errors"
	"github.com/MelissaPanduro/Producto/internal/model"
	"github.com/MelissaPanduro/Producto/internal/store/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
	q  *db.Queries
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: dbp,
		q:  db.New(dbp),
	}
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*db.Product, error) {
	product, err := p.q.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindByIDAndStatus retrieves a product by ID when its status matches.
// Returns ErrProductNotFound if no such product exists.
func (p *PgStore) FindByIDAndStatus(ctx context.Context, id int64, status model.Status) (*db.Product, error) {
	product, err := p.q.FindByIDAndStatus(ctx, db.FindByIDAndStatusParams{ID: id, Status: status.Code()})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID and status: %w", err)
	}
	return &product, nil
}

// FindAll retrieves all products ordered by ID.
func (p *PgStore) FindAll(ctx context.Context) ([]db.Product, error) {
	products, err := p.q.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	if products == nil {
		products = []db.Product{}
	}
	return products, nil
}

// Save inserts a new product when ID is zero, otherwise it replaces the existing row.
// Returns ErrProductNotFound if the row to replace does not exist.
func (p *PgStore) Save(ctx context.Context, product db.Product) (*db.Product, error) {
	if product.ID == 0 {
		return p.create(ctx, product)
	}
	return p.update(ctx, product)
}

func (p *PgStore) create(ctx context.Context, product db.Product) (*db.Product, error) {
	created, err := p.q.Create(ctx, db.CreateParams{
		Type:          product.Type,
		Description:   product.Description,
		PackageWeight: product.PackageWeight,
		Stock:         product.Stock,
		EntryDate:     product.EntryDate,
		ExpiryDate:    product.ExpiryDate,
		TypeProduct:   product.TypeProduct,
		Status:        product.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &created, nil
}

func (p *PgStore) update(ctx context.Context, product db.Product) (*db.Product, error) {
	updated, err := p.q.Update(ctx, db.UpdateParams{
		ID:            product.ID,
		Type:          product.Type,
		Description:   product.Description,
		PackageWeight: product.PackageWeight,
		Stock:         product.Stock,
		EntryDate:     product.EntryDate,
		ExpiryDate:    product.ExpiryDate,
		TypeProduct:   product.TypeProduct,
		Status:        product.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &updated, nil
}

// DeleteByID removes a product by its unique identifier. Missing rows are ignored.
func (p *PgStore) DeleteByID(ctx context.Context, id int64) error {
	if err := p.q.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	return nil
}

// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	perrors "github.com/MelissaPanduro/Producto/internal/errors"
	"github.com/MelissaPanduro/Producto/internal/model"
	"github.com/MelissaPanduro/Producto/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ProductService defines the methods for managing products.
// Methods returning a bool report with false that no matching product exists; that case is not an error.
type ProductService interface {
	// CreateProduct persists a new product and returns it with its assigned ID.
	// Returns ErrExpiryBeforeEntry without touching the store when the expiry date precedes the entry date.
	CreateProduct(ctx context.Context, product ProductDto) (*ProductDto, error)

	// GetAllProducts returns every product. Returns an empty slice if no products exist.
	GetAllProducts(ctx context.Context) ([]ProductDto, error)

	// GetProduct returns a single product by ID.
	GetProduct(ctx context.Context, id int64) (*ProductDto, bool, error)

	// DeleteProduct permanently removes a product. Deleting a missing product succeeds.
	DeleteProduct(ctx context.Context, id int64) error

	// SoftDeleteProduct marks a product inactive regardless of its current status.
	SoftDeleteProduct(ctx context.Context, id int64) (*ProductDto, bool, error)

	// RestoreProduct marks an inactive product active. Active products are reported as not found.
	RestoreProduct(ctx context.Context, id int64) (*ProductDto, bool, error)

	// UpdateProduct replaces every mutable field of an existing product, status included.
	// The date rule is checked only once the product is known to exist.
	UpdateProduct(ctx context.Context, id int64, details ProductDto) (*ProductDto, bool, error)
}

const (
	opCreate     = "create"
	opUpdate     = "update"
	opSoftDelete = "soft_delete"
	opRestore    = "restore"
	opDelete     = "delete"
)

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
	operations metric.Int64Counter
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	meter := otel.Meter("catalog-service")
	operations, err := meter.Int64Counter("product_operations",
		metric.WithDescription("Number of successful product mutations by operation"))
	if err != nil {
		panic(fmt.Sprintf("failed to create product_operations counter: %v", err))
	}
	return &Service{
		repository: repo,
		operations: operations,
	}
}

var _ ProductService = (*Service)(nil)

// CreateProduct validates the date pair and stores the product.
func (s *Service) CreateProduct(ctx context.Context, product ProductDto) (*ProductDto, error) {
	if err := validateDates(product.EntryDate, product.ExpiryDate); err != nil {
		return nil, err
	}

	saved, err := s.repository.Save(ctx, toRecord(product))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.record(ctx, opCreate)
	return toDto(saved), nil
}

// GetAllProducts retrieves all products in store order.
func (s *Service) GetAllProducts(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))
	for i := range products {
		productDTOs[i] = *toDto(&products[i])
	}
	return productDTOs, nil
}

// GetProduct retrieves a product by its ID.
func (s *Service) GetProduct(ctx context.Context, id int64) (*ProductDto, bool, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return notFoundOrError(err, id)
	}
	return toDto(product), true, nil
}

// DeleteProduct removes a product by its ID.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	s.record(ctx, opDelete)
	return nil
}

// SoftDeleteProduct sets the product status to inactive.
func (s *Service) SoftDeleteProduct(ctx context.Context, id int64) (*ProductDto, bool, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return notFoundOrError(err, id)
	}

	product.Status = model.StatusInactive.Code()
	saved, err := s.repository.Save(ctx, *product)
	if err != nil {
		return nil, false, fmt.Errorf("failed to soft delete product with ID %d: %w", id, err)
	}
	s.record(ctx, opSoftDelete)
	return toDto(saved), true, nil
}

// RestoreProduct sets an inactive product's status back to active.
func (s *Service) RestoreProduct(ctx context.Context, id int64) (*ProductDto, bool, error) {
	product, err := s.repository.FindByIDAndStatus(ctx, id, model.StatusInactive)
	if err != nil {
		return notFoundOrError(err, id)
	}

	product.Status = model.StatusActive.Code()
	saved, err := s.repository.Save(ctx, *product)
	if err != nil {
		return nil, false, fmt.Errorf("failed to restore product with ID %d: %w", id, err)
	}
	s.record(ctx, opRestore)
	return toDto(saved), true, nil
}

// UpdateProduct overwrites the existing product with details, keeping its ID.
func (s *Service) UpdateProduct(ctx context.Context, id int64, details ProductDto) (*ProductDto, bool, error) {
	existing, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return notFoundOrError(err, id)
	}
	if err := validateDates(details.EntryDate, details.ExpiryDate); err != nil {
		return nil, false, err
	}

	merged := toRecord(details)
	merged.ID = existing.ID
	saved, err := s.repository.Save(ctx, merged)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update product with ID %d: %w", id, err)
	}
	s.record(ctx, opUpdate)
	return toDto(saved), true, nil
}

func (s *Service) record(ctx context.Context, operation string) {
	s.operations.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

// validateDates enforces that expiry never precedes entry when both are known.
func validateDates(entry, expiry *civil.Date) error {
	if entry != nil && expiry != nil && expiry.Before(*entry) {
		return perrors.ErrExpiryBeforeEntry
	}
	return nil
}

// notFoundOrError turns ErrProductNotFound into an empty result and wraps anything else.
func notFoundOrError(err error, id int64) (*ProductDto, bool, error) {
	if errors.Is(err, perrors.ErrProductNotFound) {
		return nil, false, nil
	}
	return nil, false, fmt.Errorf("failed to fetch product with ID %d: %w", id, err)
}

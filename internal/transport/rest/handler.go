// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	producterrors "github.com/MelissaPanduro/Producto/internal/errors"
	"github.com/MelissaPanduro/Producto/internal/service"
	"github.com/MelissaPanduro/Producto/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: newValidator(),
		logger:   logger.With("component", "rest"),
	}
}

// newValidator lets numeric tags such as gte and lt apply to decimal fields.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// RegisterRoutes registers the HTTP routes for the product service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetByID)
			r.Put("/", h.Update)
			r.Delete("/", h.Delete)
			r.Patch("/soft-delete", h.SoftDelete)
			r.Patch("/restore", h.Restore)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// GetAll retrieves a list of all products.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received request to list products")
	list, err := h.service.GetAllProducts(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// GetByID retrieves a product by its ID.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	product, found, err := h.service.GetProduct(r.Context(), id)
	h.respondProduct(w, r, id, product, found, err, "retrieve")
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var productDto service.ProductDto
	if !h.decodeAndValidate(w, r, &productDto) {
		return
	}
	h.logger.DebugContext(r.Context(), "Received request to create product", "type", productDto.Type)

	created, err := h.service.CreateProduct(r.Context(), productDto)
	if err != nil {
		if errors.Is(err, producterrors.ErrValidation) {
			h.logger.WarnContext(r.Context(), "Product rejected", "error", err)
			web.RespondError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "type", created.Type)
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
}

// Update replaces every mutable field of a product.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var details service.ProductDto
	if !h.decodeAndValidate(w, r, &details) {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	updated, found, err := h.service.UpdateProduct(r.Context(), id, details)
	h.respondProduct(w, r, id, updated, found, err, "update")
}

// SoftDelete marks a product inactive.
func (h *Handler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to soft delete product", "ID", id)
	product, found, err := h.service.SoftDeleteProduct(r.Context(), id)
	h.respondProduct(w, r, id, product, found, err, "soft delete")
}

// Restore marks an inactive product active again.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to restore product", "ID", id)
	product, found, err := h.service.RestoreProduct(r.Context(), id)
	if err == nil && !found {
		h.logger.WarnContext(r.Context(), "Inactive product not found for restore", "ID", id)
		web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Inactive product with ID %d not found", id))
		return
	}
	h.respondProduct(w, r, id, product, found, err, "restore")
}

// Delete permanently removes a product. Unknown IDs still yield 204.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	h.logger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.logger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %d", id))
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondProduct maps the (product, found, err) outcome of a single-product operation to a response.
func (h *Handler) respondProduct(w http.ResponseWriter, r *http.Request, id int64, product *service.ProductDto, found bool, err error, action string) {
	switch {
	case errors.Is(err, producterrors.ErrValidation):
		h.logger.WarnContext(r.Context(), "Product rejected", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, producterrors.ErrProductNotFound), err == nil && !found:
		h.logger.WarnContext(r.Context(), "Product not found", "ID", id, "action", action)
		web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
	case err != nil:
		h.logger.ErrorContext(r.Context(), "Product operation failed", "ID", id, "action", action, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf("Failed to %s product with ID %d", action, id))
	default:
		h.logger.InfoContext(r.Context(), "Product operation succeeded", "ID", id, "action", action, "status", product.Status.String())
		web.RespondJSON(w, h.logger, http.StatusOK, product)
	}
}

// decodeAndValidate reads a ProductDto body and applies struct-tag validation.
// On failure it writes the 400 response and returns false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst *service.ProductDto) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, h.logger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

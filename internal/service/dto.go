package service

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/MelissaPanduro/Producto/internal/model"
	"github.com/MelissaPanduro/Producto/internal/store/db"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ProductDto represents the data transfer object for a product.
// ID is assigned by the store and ignored on input.
type ProductDto struct {
	ID            int64           `json:"id"`
	Type          string          `json:"type"          validate:"max=100"`
	Description   string          `json:"description"   validate:"max=255"`
	PackageWeight decimal.Decimal `json:"packageWeight" validate:"gte=0,lt=10000000"`
	Stock         int32           `json:"stock"         validate:"gte=0"`
	EntryDate     *civil.Date     `json:"entryDate"`
	ExpiryDate    *civil.Date     `json:"expiryDate"`
	TypeProduct   string          `json:"typeProduct"   validate:"max=100"`
	Status        model.Status    `json:"status"`
}

// toDto converts a stored product to a ProductDto.
func toDto(product *db.Product) *ProductDto {
	// status is constrained to A/I by the schema; anything else surfaces as unset
	status, _ := model.ParseStatus(product.Status)
	return &ProductDto{
		ID:            product.ID,
		Type:          product.Type,
		Description:   product.Description,
		PackageWeight: fromNumeric(product.PackageWeight),
		Stock:         product.Stock,
		EntryDate:     fromDate(product.EntryDate),
		ExpiryDate:    fromDate(product.ExpiryDate),
		TypeProduct:   product.TypeProduct,
		Status:        status,
	}
}

// toRecord converts the mutable fields of a ProductDto to a store record without an ID.
func toRecord(product ProductDto) db.Product {
	return db.Product{
		Type:          product.Type,
		Description:   product.Description,
		PackageWeight: toNumeric(product.PackageWeight),
		Stock:         product.Stock,
		EntryDate:     toDate(product.EntryDate),
		ExpiryDate:    toDate(product.ExpiryDate),
		TypeProduct:   product.TypeProduct,
		Status:        product.Status.Code(),
	}
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil || n.NaN {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func toDate(d *civil.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func fromDate(d pgtype.Date) *civil.Date {
	if !d.Valid {
		return nil
	}
	date := civil.DateOf(d.Time)
	return &date
}

// Package grpc provides a gRPC server for the catalog service.
package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/MelissaPanduro/Producto/internal/service"
	catalogv1 "github.com/MelissaPanduro/Producto/pkg/api/catalog/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ProductService defines the read operations the gRPC surface exposes.
type ProductService interface {
	GetProduct(ctx context.Context, id int64) (*service.ProductDto, bool, error)
	GetAllProducts(ctx context.Context) ([]service.ProductDto, error)
}

type Server struct {
	// Embed the unimplemented server for forward compatibility
	catalogv1.UnimplementedProductCatalogServer
	service ProductService
	logger  *slog.Logger
}

func NewServer(service ProductService, logger *slog.Logger) *Server {
	return &Server{service: service, logger: logger.With("component", "grpc")}
}

func (s *Server) GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := req.GetValue()
	logger := s.logger.With(slog.Int64("product_id", id))
	logger.InfoContext(ctx, "received grpc request GetProduct")
	if id <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid product ID: %d", id)
	}

	product, found, err := s.service.GetProduct(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "service.GetProduct failed", slog.Any("error", err))
		return nil, status.Errorf(codes.Internal, "internal server error")
	}
	if !found {
		return nil, status.Errorf(codes.NotFound, "product with ID %d not found", id)
	}

	out := &structpb.Struct{}
	if err := convert(product, out); err != nil {
		logger.ErrorContext(ctx, "failed to convert product", slog.Any("error", err))
		return nil, status.Errorf(codes.Internal, "internal server error")
	}
	logger.InfoContext(ctx, "send grpc response for GetProduct")
	return out, nil
}

func (s *Server) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	s.logger.InfoContext(ctx, "received grpc request ListProducts")
	products, err := s.service.GetAllProducts(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "service.GetAllProducts failed", slog.Any("error", err))
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	if products == nil {
		products = []service.ProductDto{}
	}
	out := &structpb.ListValue{}
	if err := convert(products, out); err != nil {
		s.logger.ErrorContext(ctx, "failed to convert products", slog.Any("error", err))
		return nil, status.Errorf(codes.Internal, "internal server error")
	}
	s.logger.InfoContext(ctx, "send grpc response for ListProducts", slog.Int("count", len(products)))
	return out, nil
}

// convert renders v through its JSON form so gRPC and REST clients see identical field names and formats.
func convert(v any, out proto.Message) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

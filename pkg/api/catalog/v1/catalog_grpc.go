// Package catalogv1 defines the catalog.v1.ProductCatalog gRPC service.
//
// Messages are protobuf well-known types: a product is a google.protobuf.Struct
// carrying the same fields as the REST representation.
package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "catalog.v1.ProductCatalog"

const (
	ProductCatalog_GetProduct_FullMethodName   = "/catalog.v1.ProductCatalog/GetProduct"
	ProductCatalog_ListProducts_FullMethodName = "/catalog.v1.ProductCatalog/ListProducts"
)

// ProductCatalogClient is the client API for ProductCatalog service.
type ProductCatalogClient interface {
	GetProduct(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListProducts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type productCatalogClient struct {
	cc grpc.ClientConnInterface
}

func NewProductCatalogClient(cc grpc.ClientConnInterface) ProductCatalogClient {
	return &productCatalogClient{cc}
}

func (c *productCatalogClient) GetProduct(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, ProductCatalog_GetProduct_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *productCatalogClient) ListProducts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	err := c.cc.Invoke(ctx, ProductCatalog_ListProducts_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProductCatalogServer is the server API for ProductCatalog service.
// All implementations must embed UnimplementedProductCatalogServer
// for forward compatibility.
type ProductCatalogServer interface {
	GetProduct(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	ListProducts(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	mustEmbedUnimplementedProductCatalogServer()
}

// UnimplementedProductCatalogServer must be embedded to have forward compatible implementations.
type UnimplementedProductCatalogServer struct{}

func (UnimplementedProductCatalogServer) GetProduct(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedProductCatalogServer) ListProducts(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedProductCatalogServer) mustEmbedUnimplementedProductCatalogServer() {}

func RegisterProductCatalogServer(s grpc.ServiceRegistrar, srv ProductCatalogServer) {
	s.RegisterService(&ProductCatalog_ServiceDesc, srv)
}

func _ProductCatalog_GetProduct_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductCatalogServer).GetProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductCatalog_GetProduct_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProductCatalogServer).GetProduct(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProductCatalog_ListProducts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProductCatalogServer).ListProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProductCatalog_ListProducts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProductCatalogServer).ListProducts(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ProductCatalog_ServiceDesc is the grpc.ServiceDesc for ProductCatalog service.
var ProductCatalog_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProductCatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetProduct",
			Handler:    _ProductCatalog_GetProduct_Handler,
		},
		{
			MethodName: "ListProducts",
			Handler:    _ProductCatalog_ListProducts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

package server

import (
	"context"

	"github.com/MelissaPanduro/Producto/pkg/web"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
)

// metadataRequestID is the lower-cased form gRPC uses for the X-Request-Id header.
const metadataRequestID = "x-request-id"

// RegistrationFunc registers a grpc service with the server.
type RegistrationFunc func(*grpc.Server)

// GRPCOptions configures NewGRPCServer.
type GRPCOptions struct {
	Reflection    bool
	ServerOptions []grpc.ServerOption
}

// NewGRPCServer creates a gRPC server with the registered services, the standard health service
// and optional reflection. Every registered service starts in the SERVING state.
func NewGRPCServer(opts GRPCOptions, registerFunc ...RegistrationFunc) (*grpc.Server, *health.Server) {
	serverOpts := append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(RequestIDUnaryInterceptor)}, opts.ServerOptions...)
	grpcServer := grpc.NewServer(serverOpts...)

	for _, regFunc := range registerFunc {
		regFunc(grpcServer)
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for name := range grpcServer.GetServiceInfo() {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	if opts.Reflection {
		reflection.Register(grpcServer)
	}

	return grpcServer, healthServer
}

// RequestIDUnaryInterceptor puts the caller's x-request-id, or a fresh uuid, into the handler context.
func RequestIDUnaryInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	reqID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(metadataRequestID); len(values) > 0 {
			reqID = values[0]
		}
	}
	if reqID == "" {
		reqID = uuid.NewString()
	}
	return handler(web.WithRequestID(ctx, reqID), req)
}

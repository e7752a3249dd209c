// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/MelissaPanduro/Producto/internal/config"
	"github.com/MelissaPanduro/Producto/internal/service"
	"github.com/MelissaPanduro/Producto/internal/store"
	grpcImpl "github.com/MelissaPanduro/Producto/internal/transport/grpc"
	"github.com/MelissaPanduro/Producto/internal/transport/rest"
	catalogv1 "github.com/MelissaPanduro/Producto/pkg/api/catalog/v1"
	"github.com/MelissaPanduro/Producto/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies builds the service layer on top of the given store.
func SetupDependencies(productStore store.ProductStore, logger *slog.Logger) *Dependencies {
	pService := service.NewService(productStore)

	return &Dependencies{
		ProductService: pService,
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the router and routes for the catalog service.
// The Prometheus scrape endpoint is mounted when metricsPath is not empty.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies, metricsPath string) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	if metricsPath != "" {
		mux.Handle(metricsPath, promhttp.Handler())
	}
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an instrumented HTTP server for the catalog service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps, cfg.Telemetry.Metrics.Path)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, otelhttp.NewHandler(mux, "catalog-http"))
}

// SetupGrpcServer initializes the gRPC server for the catalog service.
// The returned health server lets the caller flip serving status on shutdown.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) (*grpc.Server, *health.Server) {
	// Service registration function for gRPC server
	catalogRegisterFunc := func(s *grpc.Server) {
		catalogGRPCServer := grpcImpl.NewServer(deps.ProductService, deps.Logger)
		catalogv1.RegisterProductCatalogServer(s, catalogGRPCServer)
	}
	return server.NewGRPCServer(server.GRPCOptions{
		Reflection:    reflectionEnabled,
		ServerOptions: []grpc.ServerOption{grpc.StatsHandler(otelgrpc.NewServerHandler())},
	}, catalogRegisterFunc)
}

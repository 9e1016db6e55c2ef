package api

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/smazurov/halshim/internal/api/models"
	"github.com/smazurov/halshim/internal/events"
	"github.com/smazurov/halshim/internal/lights"
	"github.com/smazurov/halshim/internal/logging"
)

// AddressResolver looks up the factory WLAN address.
type AddressResolver interface {
	Resolve() (net.HardwareAddr, error)
}

// Server exposes the lights module over HTTP.
type Server struct {
	api        huma.API
	mux        *http.ServeMux
	httpServer *http.Server
	module     *lights.Module
	resolver   AddressResolver
	eventBus   *events.Bus
	logger     *slog.Logger
}

// basicAuthMiddleware rejects requests to operations that declare a
// security requirement unless they carry the configured credentials. SSE
// clients that cannot set headers may pass base64 "user:pass" as ?auth=.
func (s *Server) basicAuthMiddleware(username, password string) func(huma.Context, func(huma.Context)) {
	want := username + ":" + password

	return func(ctx huma.Context, next func(huma.Context)) {
		if op := ctx.Operation(); op != nil && len(op.Security) == 0 {
			next(ctx)
			return
		}

		got, err := requestCredentials(ctx)
		switch {
		case err != nil:
			s.unauthorized(ctx, "Invalid credentials format", err)
		case got == "":
			s.unauthorized(ctx, "Authentication required")
		case subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1:
			s.unauthorized(ctx, "Invalid credentials")
		default:
			next(ctx)
		}
	}
}

// requestCredentials returns the decoded "user:pass" from the Authorization
// header or the auth query parameter, or "" when neither is present.
func requestCredentials(ctx huma.Context) (string, error) {
	encoded := ctx.Query("auth")
	if header := ctx.Header("Authorization"); header != "" {
		const prefix = "Basic "
		if !strings.HasPrefix(header, prefix) {
			return "", errors.New("unsupported authorization scheme")
		}
		encoded = header[len(prefix):]
	}
	if encoded == "" {
		return "", nil
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	if !strings.Contains(string(decoded), ":") {
		return "", errors.New("missing password separator")
	}
	return string(decoded), nil
}

func (s *Server) unauthorized(ctx huma.Context, msg string, errs ...error) {
	ctx.SetHeader("WWW-Authenticate", `Basic realm="halshim"`)
	huma.WriteErr(s.api, ctx, http.StatusUnauthorized, msg, errs...)
}

// Options configures the API server.
type Options struct {
	Addr           string
	AuthUsername   string
	AuthPassword   string
	Module         *lights.Module
	Resolver       AddressResolver
	EventBus       *events.Bus
	MetricsHandler http.Handler // Optional Prometheus metrics handler
}

// NewServer creates a new API server with Huma v2 using Go 1.22+ native routing
func NewServer(opts *Options) *Server {
	mux := http.NewServeMux()

	corsConfig := DefaultCORSConfig()
	AddCORSHandler(mux, corsConfig)

	config := huma.DefaultConfig("halshim API", "1.0.0")
	config.Info.Description = "Loopback bridge to the lights hardware module"
	// Empty servers list will make OpenAPI use relative paths, working with any host
	config.Servers = []*huma.Server{}

	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"basicAuth": {
			Type:   "http",
			Scheme: "basic",
		},
	}

	api := humago.New(mux, config)

	server := &Server{
		api:        api,
		mux:        mux,
		httpServer: &http.Server{Addr: opts.Addr, Handler: mux},
		module:     opts.Module,
		resolver:   opts.Resolver,
		eventBus:   opts.EventBus,
		logger:     logging.GetLogger("api"),
	}

	// CORS first, then logging, then auth
	api.UseMiddleware(NewCORSMiddleware(corsConfig))
	api.UseMiddleware(HTTPLoggingMiddleware)
	if opts.AuthUsername != "" && opts.AuthPassword != "" {
		api.UseMiddleware(server.basicAuthMiddleware(opts.AuthUsername, opts.AuthPassword))
	}

	// Registered before the API routes so it is never behind auth
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}

	server.registerRoutes()

	return server
}

// GetMux returns the underlying HTTP ServeMux for additional setup
func (s *Server) GetMux() *http.ServeMux {
	return s.mux
}

// Start serves on Options.Addr until Stop is called. It returns
// http.ErrServerClosed after Stop, even when Stop ran first.
func (s *Server) Start() error {
	s.logger.Info("Starting halshim API server", "addr", s.httpServer.Addr)
	s.logger.Info("OpenAPI documentation available", "url", "http://"+s.httpServer.Addr+"/docs")

	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down without waiting for open SSE connections.
func (s *Server) Stop() error {
	s.logger.Info("Stopping API server")
	return s.httpServer.Close()
}

// registerRoutes sets up all API endpoints
func (s *Server) registerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health",
		Description: "Check API health status",
		Tags:        []string{"health"},
		Security:    []map[string][]string{}, // Empty security = no auth required
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		return &models.HealthResponse{
			Body: models.HealthData{
				Status:  "ok",
				Message: "API is healthy",
			},
		}, nil
	})

	s.registerModuleRoutes()
	s.registerLightRoutes()
	s.registerWLANRoutes()
	s.registerSSERoutes()
}

// withAuth returns security requirement for basic auth
func withAuth() []map[string][]string {
	return []map[string][]string{
		{"basicAuth": {}},
	}
}

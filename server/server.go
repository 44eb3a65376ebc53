package server

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/foodworks/go-ordering-auth/addresses"
	"github.com/foodworks/go-ordering-auth/auth"
	"github.com/foodworks/go-ordering-auth/internal/config"
	"github.com/foodworks/go-ordering-auth/token"
)

// Server exposes the customer identity and session authority over HTTP.
// Handlers never touch credentials or session records directly; every
// protected route goes through the authorization gate first.
type Server struct {
	env         string // Environment (e.g., "DEV", "PROD")
	mux         *http.ServeMux
	routes      []string
	config      config.Config
	repos       auth.Repos
	credentials *auth.CredentialService
	sessions    *auth.SessionService
	addresses   *addresses.Service
	gate        *auth.Gate
}

func New(cfg config.Config, repos auth.Repos, addressRepo addresses.Repo) (*Server, error) {
	credentialService, err := auth.NewCredentialService(repos)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create credential service: %w", err)
	}

	codec := token.NewCodec(token.NewHMACSigner(cfg.GetTokenSigningSecret()))
	sessionService, err := auth.NewSessionService(repos, codec)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create session service: %w", err)
	}

	addressService, err := addresses.NewService(addressRepo)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create address service: %w", err)
	}

	s := &Server{
		env:         cfg.GetEnv(),
		mux:         http.NewServeMux(),
		config:      cfg,
		repos:       repos,
		credentials: credentialService,
		sessions:    sessionService,
		addresses:   addressService,
		gate:        auth.NewGate(sessionService),
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		log.Debug().Str("route", route).Msg("registered")
	}
}

package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nexus-iam/sentinel/auth"
	"github.com/nexus-iam/sentinel/internal/config"
	"github.com/nexus-iam/sentinel/registration"
)

// Server is the HTTP boundary: it decodes requests, delegates to the
// authentication orchestrator and registration resolver, and translates
// failures into the error envelope. No decision logic lives here.
type Server struct {
	env      string
	mux      *http.ServeMux
	config   config.Config
	auth     *auth.AuthenticationService
	resolver *registration.Resolver
	validate *validator.Validate
}

func New(cfg config.Config, authService *auth.AuthenticationService, resolver *registration.Resolver) *Server {
	s := &Server{
		env:      cfg.GetEnv(),
		mux:      http.NewServeMux(),
		config:   cfg,
		auth:     authService,
		resolver: resolver,
		validate: validator.New(),
	}
	s.initRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, ChainMiddleware(handler, s.APIMiddleware()...))
}

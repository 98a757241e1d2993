package server

import (
	"net/http"

	"github.com/nexus-iam/sentinel/clients"
	"github.com/nexus-iam/sentinel/principal"
	"github.com/nexus-iam/sentinel/registration"
	"github.com/nexus-iam/sentinel/users"
)

// RegisterUserHandler creates a new user principal.
func (s *Server) RegisterUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRegistrationRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		handler, err := s.resolver.Resolve(principal.KindUser)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}

		result, err := handler.Register(r.Context(), registration.UserRegistration{
			Username:          req.Username,
			Password:          req.Password,
			Roles:             req.Roles,
			AllowedTokenKinds: req.AllowedTokenKinds,
			Department:        req.Department,
			Region:            req.Region,
			Email:             req.Email,
		})
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}

		user := result.Entity.(*users.User)
		w.Header().Set("Location", RouteResourceUser+user.ID)
		writeJSON(w, http.StatusCreated, RegistrationResponse{
			RegisteredEntity: registeredUserView(user),
			EntityType:       string(result.Kind),
		})
	}
}

// RegisterClientHandler creates a new client principal.
func (s *Server) RegisterClientHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClientRegistrationRequest
		if !s.decodeAndValidate(w, r, &req) {
			return
		}

		handler, err := s.resolver.Resolve(principal.KindClient)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}

		result, err := handler.Register(r.Context(), registration.ClientRegistration{
			ClientID:          req.ClientID,
			ClientSecret:      req.ClientSecret,
			Scopes:            req.Scopes,
			GrantTypes:        req.GrantTypes,
			AllowedTokenKinds: req.AllowedTokenKinds,
			Roles:             req.Roles,
			Team:              req.Team,
			ServiceTier:       req.ServiceTier,
		})
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}

		client := result.Entity.(*clients.Client)
		w.Header().Set("Location", RouteResourceClient+client.ClientID)
		writeJSON(w, http.StatusCreated, RegistrationResponse{
			RegisteredEntity: registeredClientView(client),
			EntityType:       string(result.Kind),
		})
	}
}

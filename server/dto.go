package server

import (
	"github.com/nexus-iam/sentinel/clients"
	"github.com/nexus-iam/sentinel/token"
	"github.com/nexus-iam/sentinel/users"
)

const contentTypeJSON = "application/json; charset=utf-8"

type UserLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ClientAuthRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UserRegistrationRequest struct {
	Username          string       `json:"username" validate:"required"`
	Password          string       `json:"password" validate:"required"`
	Roles             []string     `json:"roles"`
	AllowedTokenKinds []token.Kind `json:"allowed_token_kinds"`
	Department        string       `json:"department"`
	Region            string       `json:"region"`
	Email             string       `json:"email" validate:"omitempty,email"`
}

type ClientRegistrationRequest struct {
	ClientID          string       `json:"client_id" validate:"required"`
	ClientSecret      string       `json:"client_secret" validate:"required"`
	Scopes            []string     `json:"scopes"`
	GrantTypes        []string     `json:"grant_types"`
	AllowedTokenKinds []token.Kind `json:"allowed_token_kinds"`
	Roles             []string     `json:"roles"`
	Team              string       `json:"team"`
	ServiceTier       string       `json:"service_tier"`
}

// RegistrationResponse carries a sanitized view of the persisted principal;
// secret hashes never appear on the wire.
type RegistrationResponse struct {
	RegisteredEntity any    `json:"registered_entity"`
	EntityType       string `json:"entity_type"`
}

type RegisteredUser struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Roles      []string `json:"roles,omitempty"`
	Active     bool     `json:"active"`
	Department string   `json:"department,omitempty"`
	Region     string   `json:"region,omitempty"`
	Email      string   `json:"email,omitempty"`
}

type RegisteredClient struct {
	ID          string   `json:"id"`
	ClientID    string   `json:"client_id"`
	Scopes      []string `json:"scopes,omitempty"`
	GrantTypes  []string `json:"grant_types,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Team        string   `json:"team,omitempty"`
	ServiceTier string   `json:"service_tier,omitempty"`
}

func registeredUserView(u *users.User) RegisteredUser {
	return RegisteredUser{
		ID:         u.ID,
		Username:   u.Username,
		Roles:      u.Roles,
		Active:     u.Active,
		Department: u.Department,
		Region:     u.Region,
		Email:      u.Email,
	}
}

func registeredClientView(c *clients.Client) RegisteredClient {
	return RegisteredClient{
		ID:          c.ID,
		ClientID:    c.ClientID,
		Scopes:      c.Scopes,
		GrantTypes:  c.GrantTypes,
		Roles:       c.Roles,
		Team:        c.Team,
		ServiceTier: c.ServiceTier,
	}
}

package registration

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nexus-iam/sentinel/principal"
	"github.com/nexus-iam/sentinel/token"
)

var (
	InvalidRegistrationRequestErr = errors.New("invalid registration request type")
	NoHandlerForKindErr           = errors.New("no registration handler for principal kind")
)

// Request is the closed set of registration payloads. Each concrete request
// declares the principal kind it registers; the resolver dispatches on it.
type Request interface {
	PrincipalKind() principal.Kind
}

// UserRegistration registers a human principal. The store assigns the id;
// callers cannot supply one.
type UserRegistration struct {
	Username          string
	Password          string
	Roles             []string
	AllowedTokenKinds []token.Kind
	Department        string
	Region            string
	Email             string
}

func (UserRegistration) PrincipalKind() principal.Kind { return principal.KindUser }

// ClientRegistration registers a machine principal.
type ClientRegistration struct {
	ClientID          string
	ClientSecret      string
	Scopes            []string
	GrantTypes        []string
	AllowedTokenKinds []token.Kind
	Roles             []string
	Team              string
	ServiceTier       string
}

func (ClientRegistration) PrincipalKind() principal.Kind { return principal.KindClient }

// Result carries the persisted principal and its kind.
type Result struct {
	Entity any
	Kind   principal.Kind
}

// Handler registers principals of exactly one kind. The set of
// implementations is closed: userHandler and clientHandler.
type Handler interface {
	Register(ctx context.Context, request Request) (*Result, error)
	Kind() principal.Kind
}

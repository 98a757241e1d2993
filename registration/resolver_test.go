package registration_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nexus-iam/sentinel/auth"
	"github.com/nexus-iam/sentinel/clients"
	"github.com/nexus-iam/sentinel/clients/fakerepo"
	"github.com/nexus-iam/sentinel/credentials"
	"github.com/nexus-iam/sentinel/principal"
	"github.com/nexus-iam/sentinel/registration"
	"github.com/nexus-iam/sentinel/token"
	"github.com/nexus-iam/sentinel/token/ledgerfake"
	"github.com/nexus-iam/sentinel/users"
	"github.com/nexus-iam/sentinel/users/repofake"
)

type registrationFixture struct {
	users    *repofake.FakeUserRepo
	clients  *fakerepo.FakeClientRepo
	verifier credentials.Verifier
	resolver *registration.Resolver
}

func newRegistrationFixture(t *testing.T) *registrationFixture {
	t.Helper()

	f := &registrationFixture{
		users:    repofake.NewFakeUserRepo(),
		clients:  fakerepo.NewFakeClientRepo(),
		verifier: credentials.NewBcryptVerifier(),
	}

	resolver, err := registration.NewResolver(
		registration.NewUserHandler(f.users, f.verifier),
		registration.NewClientHandler(f.clients, f.verifier),
	)
	require.NoError(t, err)
	f.resolver = resolver
	return f
}

func TestResolveReturnsKindSpecificHandlers(t *testing.T) {
	f := newRegistrationFixture(t)

	userHandler, err := f.resolver.Resolve(principal.KindUser)
	require.NoError(t, err)
	require.Equal(t, principal.KindUser, userHandler.Kind())

	clientHandler, err := f.resolver.Resolve(principal.KindClient)
	require.NoError(t, err)
	require.Equal(t, principal.KindClient, clientHandler.Kind())

	require.NotEqual(t, fmt.Sprintf("%T", userHandler), fmt.Sprintf("%T", clientHandler))
}

func TestResolveUnknownKind(t *testing.T) {
	f := newRegistrationFixture(t)

	_, err := f.resolver.Resolve(principal.Kind("SERVICE_ACCOUNT"))
	require.ErrorIs(t, err, registration.NoHandlerForKindErr)
}

func TestNewResolverRejectsDuplicateKind(t *testing.T) {
	f := newRegistrationFixture(t)

	_, err := registration.NewResolver(
		registration.NewUserHandler(f.users, f.verifier),
		registration.NewUserHandler(f.users, f.verifier),
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate registration handler")
}

func TestRegisterUserHashesPassword(t *testing.T) {
	f := newRegistrationFixture(t)

	handler, err := f.resolver.Resolve(principal.KindUser)
	require.NoError(t, err)

	result, err := handler.Register(context.Background(), registration.UserRegistration{
		Username:   "alice",
		Password:   "s3cret",
		Roles:      []string{"ROLE_USER"},
		Department: "engineering",
		Email:      "alice@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, principal.KindUser, result.Kind)

	saved, ok := result.Entity.(*users.User)
	require.True(t, ok)
	require.NotEmpty(t, saved.ID)
	require.True(t, saved.Active)
	require.NotEqual(t, "s3cret", saved.PasswordHash)
	require.True(t, f.verifier.Matches("s3cret", saved.PasswordHash))
}

func TestRegisterClientGeneratesID(t *testing.T) {
	f := newRegistrationFixture(t)

	handler, err := f.resolver.Resolve(principal.KindClient)
	require.NoError(t, err)

	result, err := handler.Register(context.Background(), registration.ClientRegistration{
		ClientID:     "reporting-service",
		ClientSecret: "svc-secret",
		Scopes:       []string{"read:reports"},
		GrantTypes:   []string{"client_credentials"},
		Team:         "payments",
	})
	require.NoError(t, err)
	require.Equal(t, principal.KindClient, result.Kind)

	saved, ok := result.Entity.(*clients.Client)
	require.True(t, ok)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, "reporting-service", saved.ClientID)
	require.NotEqual(t, "svc-secret", saved.SecretHash)
	require.True(t, f.verifier.Matches("svc-secret", saved.SecretHash))
}

func TestRegisterRejectsMismatchedRequestShape(t *testing.T) {
	f := newRegistrationFixture(t)

	handler, err := f.resolver.Resolve(principal.KindUser)
	require.NoError(t, err)

	_, err = handler.Register(context.Background(), registration.ClientRegistration{
		ClientID:     "reporting-service",
		ClientSecret: "svc-secret",
	})
	require.ErrorIs(t, err, registration.InvalidRegistrationRequestErr)
}

func TestRegisterThenAuthenticate(t *testing.T) {
	f := newRegistrationFixture(t)

	handler, err := f.resolver.Resolve(principal.KindUser)
	require.NoError(t, err)
	_, err = handler.Register(context.Background(), registration.UserRegistration{
		Username: "alice",
		Password: "s3cret",
		Roles:    []string{"ROLE_USER"},
	})
	require.NoError(t, err)

	secret := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	codec, err := token.NewCodec(secret, "com.testissuer")
	require.NoError(t, err)

	service, err := auth.NewAuthenticationService(
		auth.Repos{Users: f.users, Clients: f.clients, Ledger: ledgerfake.NewFakeLedger()},
		codec,
		f.verifier,
		15*time.Minute,
		time.Hour,
	)
	require.NoError(t, err)

	resp, err := service.AuthenticateUser(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Subject)
	require.True(t, codec.Validate(resp.AccessToken))
}

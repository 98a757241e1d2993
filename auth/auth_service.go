package auth

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nexus-iam/sentinel/clients"
	"github.com/nexus-iam/sentinel/credentials"
	"github.com/nexus-iam/sentinel/principal"
	"github.com/nexus-iam/sentinel/token"
	"github.com/nexus-iam/sentinel/users"
)

// System-owned claim names stripped from a refresh token's claims before
// they are copied into the new access token. The codec re-stamps all of
// them on issue.
var systemClaims = map[string]struct{}{
	"exp":                {},
	"iat":                {},
	"jti":                {},
	token.ClaimTokenKind: {},
}

// TokenResponse is the result of a successful authentication or refresh.
type TokenResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	Subject      string     `json:"subject,omitempty"`
	Scopes       []string   `json:"scopes,omitempty"`
	TokenKind    token.Kind `json:"token_type"`
	ExpiresAt    time.Time  `json:"expires_at"`
	Issuer       string     `json:"issuer"`
}

// Repos holds all store dependencies for the AuthenticationService.
type Repos struct {
	Users   users.Repo
	Clients clients.Repo
	Ledger  token.Ledger
}

// AuthenticationService coordinates credential verification, claim
// assembly, token issuance, refresh, and ledger writes for both principal
// kinds.
type AuthenticationService struct {
	repos      Repos
	codec      *token.Codec
	verifier   credentials.Verifier
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        zerolog.Logger
	nowTime    func() time.Time
}

// AuthenticationServiceOption modifies the AuthenticationService instance.
type AuthenticationServiceOption func(*AuthenticationService)

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) AuthenticationServiceOption {
	return func(as *AuthenticationService) {
		as.nowTime = nowFunc
	}
}

// WithLogger sets the logger used for ledger-write failures.
func WithLogger(log zerolog.Logger) AuthenticationServiceOption {
	return func(as *AuthenticationService) {
		as.log = log
	}
}

// NewAuthenticationService initializes the orchestrator with required
// dependencies. TTLs apply to access and refresh tokens respectively.
func NewAuthenticationService(
	repos Repos,
	codec *token.Codec,
	verifier credentials.Verifier,
	accessTTL, refreshTTL time.Duration,
	options ...AuthenticationServiceOption,
) (*AuthenticationService, error) {
	if repos.Users == nil {
		return nil, errors.New("[NewAuthenticationService] Users repo is required")
	}
	if repos.Clients == nil {
		return nil, errors.New("[NewAuthenticationService] Clients repo is required")
	}
	if repos.Ledger == nil {
		return nil, errors.New("[NewAuthenticationService] Ledger is required")
	}
	if codec == nil {
		return nil, errors.New("[NewAuthenticationService] codec is required")
	}
	if verifier == nil {
		return nil, errors.New("[NewAuthenticationService] verifier is required")
	}

	as := &AuthenticationService{
		repos:      repos,
		codec:      codec,
		verifier:   verifier,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		log:        zerolog.Nop(),
		nowTime:    time.Now,
	}

	for _, opt := range options {
		opt(as)
	}

	return as, nil
}

// AuthenticateUser verifies a username/password pair and issues an access
// and refresh token pair carrying the user claim schema.
func (as *AuthenticationService) AuthenticateUser(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := as.repos.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, PrincipalNotFoundErr
		}
		return nil, errors.Wrap(err, "[AuthenticateUser] FindByUsername")
	}

	if !as.verifier.Matches(password, user.PasswordHash) {
		return nil, InvalidCredentialsErr
	}

	claims := UserClaims{
		Roles:      user.Roles,
		Department: user.Department,
		Region:     user.Region,
		Email:      user.Email,
	}.ToMap()

	return as.issuePair(ctx, user.Username, user.ID, principal.KindUser, claims, user.Roles)
}

// AuthenticateClient verifies a client id/secret pair and issues an access
// and refresh token pair carrying the client claim schema.
func (as *AuthenticationService) AuthenticateClient(ctx context.Context, clientID, clientSecret string) (*TokenResponse, error) {
	client, err := as.repos.Clients.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, PrincipalNotFoundErr
		}
		return nil, errors.Wrap(err, "[AuthenticateClient] FindByClientID")
	}

	if !as.verifier.Matches(clientSecret, client.SecretHash) {
		return nil, InvalidCredentialsErr
	}

	claims := ClientClaims{
		Roles:      client.Roles,
		Scopes:     client.Scopes,
		GrantTypes: client.GrantTypes,
		Team:       client.Team,
		Tier:       client.ServiceTier,
	}.ToMap()

	return as.issuePair(ctx, client.ClientID, client.ID, principal.KindClient, claims, client.Scopes)
}

// RefreshUserToken exchanges a valid user refresh token for a new access
// token. The refresh token itself is echoed back unchanged.
func (as *AuthenticationService) RefreshUserToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	return as.refreshAccessToken(ctx, refreshToken)
}

// RefreshClientToken is the client-side counterpart of RefreshUserToken.
func (as *AuthenticationService) RefreshClientToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	return as.refreshAccessToken(ctx, refreshToken)
}

func (as *AuthenticationService) issuePair(
	ctx context.Context,
	subject, subjectID string,
	subjectKind principal.Kind,
	claims map[string]any,
	scopes []string,
) (*TokenResponse, error) {
	accessToken, err := as.codec.Issue(subject, token.KindBearerJWT, claims, subjectKind, as.accessTTL)
	if err != nil {
		return nil, errors.Wrap(err, "[issuePair] access token")
	}

	refreshToken, err := as.codec.Issue(subject, token.KindRefreshToken, claims, subjectKind, as.refreshTTL)
	if err != nil {
		return nil, errors.Wrap(err, "[issuePair] refresh token")
	}

	// Ledger writes never block the response; the tokens are already signed.
	as.recordToken(ctx, subjectID, subjectKind, accessToken, token.KindBearerJWT, as.accessTTL)
	as.recordToken(ctx, subjectID, subjectKind, refreshToken, token.KindRefreshToken, as.refreshTTL)

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Subject:      subject,
		Scopes:       scopes,
		TokenKind:    token.KindBearerJWT,
		ExpiresAt:    as.nowTime().Add(as.accessTTL),
		Issuer:       as.codec.Issuer(),
	}, nil
}

// refreshAccessToken derives the subject and claims from the refresh token
// itself; caller input is never trusted for identity. Both principal kinds
// follow the same claim-carry policy: system-owned claims are stripped and
// everything else is copied into the new access token.
func (as *AuthenticationService) refreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	if !as.codec.Validate(refreshToken) || !as.codec.IsRefreshKind(refreshToken) {
		return nil, InvalidRefreshTokenErr
	}

	claims, err := as.codec.Parse(refreshToken)
	if err != nil {
		return nil, InvalidRefreshTokenErr
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, InvalidRefreshTokenErr
	}
	rawKind, _ := claims[token.ClaimSubjectKind].(string)
	subjectKind, err := principal.ParseKind(rawKind)
	if err != nil {
		return nil, InvalidRefreshTokenErr
	}

	carried := make(map[string]any, len(claims))
	for name, value := range claims {
		if _, reserved := systemClaims[name]; reserved {
			continue
		}
		carried[name] = value
	}

	newAccessToken, err := as.codec.Issue(subject, token.KindBearerJWT, carried, subjectKind, as.accessTTL)
	if err != nil {
		return nil, errors.Wrap(err, "[refreshAccessToken] issue")
	}

	as.recordToken(ctx, subject, subjectKind, newAccessToken, token.KindBearerJWT, as.accessTTL)

	return &TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: refreshToken,
		Subject:      subject,
		TokenKind:    token.KindBearerJWT,
		ExpiresAt:    as.nowTime().Add(as.accessTTL),
		Issuer:       as.codec.Issuer(),
	}, nil
}

// recordToken appends an issuance record to the ledger. A write failure is
// surfaced to the log and swallowed: the tokens are already issued and the
// caller must still receive them.
func (as *AuthenticationService) recordToken(
	ctx context.Context,
	subjectID string,
	subjectKind principal.Kind,
	raw string,
	kind token.Kind,
	ttl time.Duration,
) {
	now := as.nowTime()
	err := as.repos.Ledger.Save(ctx, &token.IssuedToken{
		Token:       raw,
		Kind:        kind,
		SubjectID:   subjectID,
		SubjectKind: subjectKind,
		IssuedAt:    now,
		ExpiresAt:   now.Add(ttl),
	})
	if err != nil {
		as.log.Warn().
			Err(err).
			Str("subject_id", subjectID).
			Str("token_type", string(kind)).
			Msg("token ledger write failed")
	}
}

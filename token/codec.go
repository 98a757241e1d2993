package token

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nexus-iam/sentinel/principal"
)

// ErrInvalidToken is returned for any token that fails to parse: bad
// signature, malformed structure, or expired. Callers must not distinguish
// between those cases.
var ErrInvalidToken = errors.New("invalid token")

// Reserved claim names owned by the codec. Custom claims never override
// them: Issue sets them after merging the caller's claims bag.
const (
	ClaimTokenKind   = "type"
	ClaimSubjectKind = "subject_type"
)

// Codec builds and verifies signed tokens. The signing key is derived once
// from a base64-encoded secret and read-only afterwards, so a single Codec
// is safe for concurrent use.
type Codec struct {
	key     []byte
	issuer  string
	nowFunc func() time.Time
}

type CodecOption func(*Codec)

// WithNowFunc overrides the time source (primarily for testing).
func WithNowFunc(now func() time.Time) CodecOption {
	return func(c *Codec) {
		c.nowFunc = now
	}
}

// NewCodec decodes the base64 signing secret and builds the codec. A missing
// or malformed secret is a non-recoverable configuration error; callers are
// expected to abort startup on it.
func NewCodec(base64Secret, issuer string, options ...CodecOption) (*Codec, error) {
	if base64Secret == "" {
		return nil, errors.New("signing secret is required")
	}
	key, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, errors.Wrap(err, "signing secret is not valid base64")
	}

	c := &Codec{
		key:     key,
		issuer:  issuer,
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Issuer returns the configured issuer name stamped into every token.
func (c *Codec) Issuer() string {
	return c.issuer
}

// Issue signs a token for subject carrying the custom claims bag plus the
// registered claims. Registered claims are written last so a colliding
// custom claim can never displace them.
func (c *Codec) Issue(subject string, kind Kind, claims map[string]any, subjectKind principal.Kind, ttl time.Duration) (string, error) {
	now := c.nowFunc()

	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["jti"] = uuid.New().String()
	mapClaims["sub"] = subject
	mapClaims["iss"] = c.issuer
	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = now.Add(ttl).Unix()
	mapClaims[ClaimTokenKind] = string(kind)
	mapClaims[ClaimSubjectKind] = string(subjectKind)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(c.key)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return signed, nil
}

// Parse verifies the signature, structure, and expiry of raw and returns its
// claims. Any failure collapses to ErrInvalidToken.
func (c *Codec) Parse(raw string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(raw, c.verificationKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.nowFunc),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Validate reports whether raw passes signature, structural, and expiry
// checks. There is no variant that skips the expiry check.
func (c *Codec) Validate(raw string) bool {
	_, err := c.Parse(raw)
	return err == nil
}

// KindOf extracts the token kind claim.
func (c *Codec) KindOf(raw string) (Kind, error) {
	claims, err := c.Parse(raw)
	if err != nil {
		return "", err
	}
	kind, ok := claims[ClaimTokenKind].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	return Kind(kind), nil
}

// IsRefreshKind reports whether raw is a refresh token. Anything that fails
// to parse is simply not a refresh token.
func (c *Codec) IsRefreshKind(raw string) bool {
	kind, err := c.KindOf(raw)
	if err != nil {
		return false
	}
	return kind == KindRefreshToken
}

// IsExpired checks the expiry of a token whose signature verifies. An
// unreadable token counts as expired.
func (c *Codec) IsExpired(raw string) bool {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	parsed, err := parser.Parse(raw, c.verificationKey)
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(c.nowFunc())
}

func (c *Codec) verificationKey(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return c.key, nil
}

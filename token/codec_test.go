package token_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nexus-iam/sentinel/principal"
	"github.com/nexus-iam/sentinel/token"
)

const (
	testIssuer  = "com.testissuer"
	testSubject = "alice"
)

func testSecret() string {
	return base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func newTestCodec(t *testing.T, options ...token.CodecOption) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(testSecret(), testIssuer, options...)
	require.NoError(t, err)
	return codec
}

func TestNewCodecRejectsMissingSecret(t *testing.T) {
	_, err := token.NewCodec("", testIssuer)
	require.Error(t, err)
}

func TestNewCodecRejectsMalformedSecret(t *testing.T) {
	_, err := token.NewCodec("not-base64!!", testIssuer)
	require.Error(t, err)
}

func TestIssueParseRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	custom := map[string]any{
		"roles":      []string{"ROLE_USER", "ROLE_AUDITOR"},
		"department": "engineering",
		"region":     "apac",
		"email":      "alice@example.com",
	}

	raw, err := codec.Issue(testSubject, token.KindBearerJWT, custom, principal.KindUser, time.Minute)
	require.NoError(t, err)
	require.Len(t, strings.Split(raw, "."), 3)

	claims, err := codec.Parse(raw)
	require.NoError(t, err)

	require.Equal(t, testSubject, claims["sub"])
	require.Equal(t, testIssuer, claims["iss"])
	require.Equal(t, string(token.KindBearerJWT), claims[token.ClaimTokenKind])
	require.Equal(t, string(principal.KindUser), claims[token.ClaimSubjectKind])
	require.NotEmpty(t, claims["jti"])

	// JSON round-trip turns string slices into []any.
	require.Equal(t, []any{"ROLE_USER", "ROLE_AUDITOR"}, claims["roles"])
	require.Equal(t, "engineering", claims["department"])
	require.Equal(t, "apac", claims["region"])
	require.Equal(t, "alice@example.com", claims["email"])
}

func TestSystemClaimsWinOverCustomClaims(t *testing.T) {
	codec := newTestCodec(t)

	custom := map[string]any{
		"sub":                  "mallory",
		"iss":                  "evil-issuer",
		token.ClaimTokenKind:   string(token.KindRefreshToken),
		token.ClaimSubjectKind: string(principal.KindClient),
		"exp":                  int64(1),
	}

	raw, err := codec.Issue(testSubject, token.KindBearerJWT, custom, principal.KindUser, time.Minute)
	require.NoError(t, err)

	claims, err := codec.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, testSubject, claims["sub"])
	require.Equal(t, testIssuer, claims["iss"])
	require.Equal(t, string(token.KindBearerJWT), claims[token.ClaimTokenKind])
	require.Equal(t, string(principal.KindUser), claims[token.ClaimSubjectKind])
	require.False(t, codec.IsExpired(raw))
}

func TestExpiredTokenFailsValidation(t *testing.T) {
	codec := newTestCodec(t)

	raw, err := codec.Issue(testSubject, token.KindBearerJWT, nil, principal.KindUser, -time.Second)
	require.NoError(t, err)

	require.False(t, codec.Validate(raw))
	require.True(t, codec.IsExpired(raw))

	_, err = codec.Parse(raw)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestTamperedSignatureRejected(t *testing.T) {
	codec := newTestCodec(t)

	raw, err := codec.Issue(testSubject, token.KindBearerJWT, nil, principal.KindUser, time.Minute)
	require.NoError(t, err)

	idx := strings.LastIndex(raw, ".")
	mutated := byte('A')
	if raw[idx+1] == 'A' {
		mutated = 'B'
	}
	tampered := raw[:idx+1] + string(mutated) + raw[idx+2:]
	require.NotEqual(t, raw, tampered)

	require.False(t, codec.Validate(tampered))
	_, err = codec.Parse(tampered)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestKindOf(t *testing.T) {
	codec := newTestCodec(t)

	access, err := codec.Issue(testSubject, token.KindBearerJWT, nil, principal.KindUser, time.Minute)
	require.NoError(t, err)
	refresh, err := codec.Issue(testSubject, token.KindRefreshToken, nil, principal.KindUser, time.Minute)
	require.NoError(t, err)

	kind, err := codec.KindOf(access)
	require.NoError(t, err)
	require.Equal(t, token.KindBearerJWT, kind)

	require.True(t, codec.IsRefreshKind(refresh))
	require.False(t, codec.IsRefreshKind(access))
}

func TestIsRefreshKindFalseOnGarbage(t *testing.T) {
	codec := newTestCodec(t)

	require.False(t, codec.IsRefreshKind("not-a-token"))
	require.False(t, codec.IsRefreshKind(""))
}

func TestValidationUsesInjectedClock(t *testing.T) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	issuing := newTestCodec(t, token.WithNowFunc(func() time.Time { return base }))
	raw, err := issuing.Issue(testSubject, token.KindBearerJWT, nil, principal.KindUser, time.Minute)
	require.NoError(t, err)
	require.True(t, issuing.Validate(raw))

	later := newTestCodec(t, token.WithNowFunc(func() time.Time { return base.Add(2 * time.Minute) }))
	require.False(t, later.Validate(raw))
	require.True(t, later.IsExpired(raw))
}

func TestParseRejectsTokenFromOtherKey(t *testing.T) {
	codec := newTestCodec(t)

	otherSecret := base64.StdEncoding.EncodeToString([]byte("ffffffffffffffffffffffffffffffff"))
	other, err := token.NewCodec(otherSecret, testIssuer)
	require.NoError(t, err)

	raw, err := other.Issue(testSubject, token.KindBearerJWT, nil, principal.KindUser, time.Minute)
	require.NoError(t, err)

	require.False(t, codec.Validate(raw))
}

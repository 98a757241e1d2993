package token

// Kind classifies the credentials the service can mint. Only KindBearerJWT
// and KindRefreshToken are produced by the current flows; the remaining
// kinds are declared so principals can restrict what may be issued to them
// as new token families come online.
type Kind string

const (
	// KindBearerJWT is a self-contained signed access token.
	KindBearerJWT Kind = "BEARER_JWT"

	// KindRefreshToken is a long-lived token exchanged for new access tokens.
	KindRefreshToken Kind = "REFRESH_TOKEN"

	// KindOpaque requires server-side introspection.
	KindOpaque Kind = "OPAQUE"

	// KindAPIKey is a static service-to-service credential.
	KindAPIKey Kind = "API_KEY"

	// KindSession is a cookie-carried token for stateful applications.
	KindSession Kind = "SESSION"

	// KindHMAC is a custom token signed with a shared secret.
	KindHMAC Kind = "HMAC"
)

package server

const (
	RouteAuthLogin         = "/auth/login"
	RouteAuthClient        = "/auth/client"
	RouteAuthLoginRefresh  = "/auth/login/refresh"
	RouteAuthClientRefresh = "/auth/client/refresh"

	RouteRegisterUser   = "/api/register/user"
	RouteRegisterClient = "/api/register/client"

	RouteHealthz = "/healthz"

	// Location targets for created principals.
	RouteResourceUser   = "/api/resource/user/"
	RouteResourceClient = "/api/resource/client/"
)

package server

func (s *Server) initRoutes() {
	// AUTH
	s.RegisterRouteFunc("POST "+RouteAuthLogin, s.LoginHandler())
	s.RegisterRouteFunc("POST "+RouteAuthClient, s.ClientAuthHandler())
	s.RegisterRouteFunc("POST "+RouteAuthLoginRefresh, s.UserRefreshHandler())
	s.RegisterRouteFunc("POST "+RouteAuthClientRefresh, s.ClientRefreshHandler())

	// REGISTRATION
	s.RegisterRouteFunc("POST "+RouteRegisterUser, s.RegisterUserHandler())
	s.RegisterRouteFunc("POST "+RouteRegisterClient, s.RegisterClientHandler())

	s.RegisterRouteFunc("GET "+RouteHealthz, s.HealthzHandler())
}

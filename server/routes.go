package server

func (s *Server) initRoutes() {
	api := s.APIMiddleware()

	// Open routes
	s.RegisterRouteHandler("POST "+RouteCustomerSignup, ChainMiddleware(s.SignupHandler(), api...))
	s.RegisterRouteHandler("POST "+RouteCustomerLogin, ChainMiddleware(s.LoginHandler(), api...))
	s.RegisterRouteHandler("POST "+RouteCustomerLogout, ChainMiddleware(s.LogoutHandler(), api...))

	// Protected routes (require a valid bearer session)
	protected := append(api, s.RequireAuth())
	s.RegisterRouteHandler("PUT "+RouteCustomer, ChainMiddleware(s.UpdateCustomerHandler(), protected...))
	s.RegisterRouteHandler("PUT "+RouteCustomerPassword, ChainMiddleware(s.ChangePasswordHandler(), protected...))
	s.RegisterRouteHandler("POST "+RouteAddress, ChainMiddleware(s.SaveAddressHandler(), protected...))
	s.RegisterRouteHandler("GET "+RouteAddressCustomer, ChainMiddleware(s.ListAddressesHandler(), protected...))
	s.RegisterRouteHandler("DELETE "+RouteAddressByUUID, ChainMiddleware(s.DeleteAddressHandler(), protected...))
}

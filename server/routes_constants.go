package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Customer routes
	RouteCustomerSignup   = "/customer/signup"
	RouteCustomerLogin    = "/customer/login"
	RouteCustomerLogout   = "/customer/logout"
	RouteCustomer         = "/customer"
	RouteCustomerPassword = "/customer/password"

	// Address routes
	RouteAddress         = "/address"
	RouteAddressCustomer = "/address/customer"
	RouteAddressByUUID   = "/address/{address_uuid}"
)

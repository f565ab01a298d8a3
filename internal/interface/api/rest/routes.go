package rest

const (
	// auth
	RouteLogin  = "/login"
	RouteLogout = "/logout"
	RouteAuth   = "/auth"

	// users
	RouteRegistration = "/registration"
	RouteAllUsers     = "/alluser"
	RouteOneUser      = "/oneuser"
	RouteBlockByAdmin = "/userblockingbyadmin"
	RouteBlockSelf    = "/userblocking"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)

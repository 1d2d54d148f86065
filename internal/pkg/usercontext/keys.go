package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	KeyContext   = "ADMIN_CONTEXT"
	KeyIsAdmin   = "isAdmin"
	KeyUsername  = "username"
	KeyLoginVia  = "login_via"
	KeyFromAPI   = "from_api"
	KeyCSRFToken = "csrf"
)

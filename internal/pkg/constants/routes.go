package constants

// Static route constants
const (
	RouteHome       = "/"
	RouteAbout      = "/about"
	RouteProjects   = "/projects"
	RouteContact    = "/contact"
	RouteBlog       = "/blog"
	RouteResources  = "/resources"
	RouteNewsletter = "/newsletter"

	RouteAdmin            = "/admin"
	RouteAdminLogin       = "/admin/login"
	RouteAdminLogout      = "/admin/logout"
	RouteAdminPosts       = "/admin/posts"
	RouteAdminResources   = "/admin/resources"
	RouteAdminSubscribers = "/admin/subscribers"
	RouteAdminUploads     = "/admin/uploads"
)

// Object storage folders accepted by the image upload
const (
	UploadFolderDefault   = "uploads"
	UploadFolderCovers    = "covers"
	UploadFolderResources = "resources"
)

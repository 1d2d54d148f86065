package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/adminauth"
	"github.com/ManuelReschke/Folio/internal/pkg/contact"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/newsletter"
	"github.com/ManuelReschke/Folio/internal/pkg/objectstore"
)

// Dependencies are the services shared by all controllers
type Dependencies struct {
	Repos       *repository.Repositories
	Content     *content.Service
	Newsletter  *newsletter.Service
	Contact     *contact.Service
	Credentials adminauth.Credentials
	// Store is nil when object storage is disabled
	Store objectstore.Store
}

// DefaultDependencies wires the services from the global repository factory
// and the environment
func DefaultDependencies() Dependencies {
	repos := repository.GetGlobalRepositories()
	return Dependencies{
		Repos:       repos,
		Content:     content.NewServiceFromRepositories(repos),
		Newsletter:  newsletter.NewService(repos.Subscriber),
		Contact:     contact.NewService(),
		Credentials: adminauth.FromEnv(),
	}
}

// Global controller instances
var (
	adminController           *AdminController
	authController            *AuthController
	oauthController           *OAuthController
	adminPostController       *AdminPostController
	adminResourceController   *AdminResourceController
	adminSubscriberController *AdminSubscriberController
	adminUploadController     *AdminUploadController
	blogController            *BlogController
	resourceController        *ResourceController
	newsletterController      *NewsletterController
	contactController         *ContactController
	mainController            *MainController
)

// InitializeControllers creates the global controllers
func InitializeControllers(deps Dependencies) {
	adminController = NewAdminController(deps.Repos)
	authController = NewAuthController(deps.Credentials)
	oauthController = NewOAuthController(deps.Credentials)
	adminPostController = NewAdminPostController(deps.Content)
	adminResourceController = NewAdminResourceController(deps.Content)
	adminSubscriberController = NewAdminSubscriberController(deps.Newsletter)
	adminUploadController = NewAdminUploadController(deps.Store)
	blogController = NewBlogController(deps.Content)
	resourceController = NewResourceController(deps.Content)
	newsletterController = NewNewsletterController(deps.Newsletter)
	contactController = NewContactController(deps.Contact)
	mainController = NewMainController(deps.Repos, deps.Content)
}

func ensureInitialized() {
	if mainController == nil {
		InitializeControllers(DefaultDependencies())
	}
}

// Adapter functions used by the router

// HandleAdminDashboard - Adapter for the admin dashboard
func HandleAdminDashboard(c *fiber.Ctx) error {
	ensureInitialized()
	return adminController.HandleDashboard(c)
}

// HandleAdminLogin - Adapter for the login form and submission
func HandleAdminLogin(c *fiber.Ctx) error {
	ensureInitialized()
	return authController.HandleLogin(c)
}

// HandleAdminLogout - Adapter for logout
func HandleAdminLogout(c *fiber.Ctx) error {
	ensureInitialized()
	return authController.HandleLogout(c)
}

// HandleOAuthCallback - Adapter for the provider callback
func HandleOAuthCallback(c *fiber.Ctx) error {
	ensureInitialized()
	return oauthController.HandleCallback(c)
}

// HandleAdminPosts - Adapter for the post list
func HandleAdminPosts(c *fiber.Ctx) error {
	ensureInitialized()
	return adminPostController.HandleList(c)
}

// HandleAdminPostCreate - Adapter for the empty post editor
func HandleAdminPostCreate(c *fiber.Ctx) error {
	ensureInitialized()
	return adminPostController.HandleCreate(c)
}

// HandleAdminPostStore - Adapter for post creation
func HandleAdminPostStore(c *fiber.Ctx) error {
	ensureInitialized()
	return adminPostController.HandleStore(c)
}

// HandleAdminPostEdit - Adapter for the post editor
func HandleAdminPostEdit(c *fiber.Ctx) error {
	ensureInitialized()
	return adminPostController.HandleEdit(c)
}

// HandleAdminPostUpdate - Adapter for post updates
func HandleAdminPostUpdate(c *fiber.Ctx) error {
	ensureInitialized()
	return adminPostController.HandleUpdate(c)
}

// HandleAdminPostDelete - Adapter for post deletion
func HandleAdminPostDelete(c *fiber.Ctx) error {
	ensureInitialized()
	return adminPostController.HandleDelete(c)
}

// HandleAdminResources - Adapter for the resource list
func HandleAdminResources(c *fiber.Ctx) error {
	ensureInitialized()
	return adminResourceController.HandleList(c)
}

// HandleAdminResourceCreate - Adapter for the empty resource editor
func HandleAdminResourceCreate(c *fiber.Ctx) error {
	ensureInitialized()
	return adminResourceController.HandleCreate(c)
}

// HandleAdminResourceStore - Adapter for resource creation
func HandleAdminResourceStore(c *fiber.Ctx) error {
	ensureInitialized()
	return adminResourceController.HandleStore(c)
}

// HandleAdminResourceEdit - Adapter for the resource editor
func HandleAdminResourceEdit(c *fiber.Ctx) error {
	ensureInitialized()
	return adminResourceController.HandleEdit(c)
}

// HandleAdminResourceUpdate - Adapter for resource updates
func HandleAdminResourceUpdate(c *fiber.Ctx) error {
	ensureInitialized()
	return adminResourceController.HandleUpdate(c)
}

// HandleAdminResourceDelete - Adapter for resource deletion
func HandleAdminResourceDelete(c *fiber.Ctx) error {
	ensureInitialized()
	return adminResourceController.HandleDelete(c)
}

// HandleAdminSubscribers - Adapter for the subscriber list
func HandleAdminSubscribers(c *fiber.Ctx) error {
	ensureInitialized()
	return adminSubscriberController.HandleList(c)
}

// HandleAdminSubscriberDeactivate - Adapter for subscriber deactivation
func HandleAdminSubscriberDeactivate(c *fiber.Ctx) error {
	ensureInitialized()
	return adminSubscriberController.HandleDeactivate(c)
}

// HandleAdminUpload - Adapter for image uploads
func HandleAdminUpload(c *fiber.Ctx) error {
	ensureInitialized()
	return adminUploadController.HandleUpload(c)
}

// HandleAdminUploadDelete - Adapter for image deletion
func HandleAdminUploadDelete(c *fiber.Ctx) error {
	ensureInitialized()
	return adminUploadController.HandleDelete(c)
}

// HandleHome - Adapter for the landing page
func HandleHome(c *fiber.Ctx) error {
	ensureInitialized()
	return mainController.HandleHome(c)
}

// HandleAbout - Adapter for the about page
func HandleAbout(c *fiber.Ctx) error {
	ensureInitialized()
	return mainController.HandleAbout(c)
}

// HandleProjects - Adapter for the projects page
func HandleProjects(c *fiber.Ctx) error {
	ensureInitialized()
	return mainController.HandleProjects(c)
}

// HandleContact - Adapter for the contact form
func HandleContact(c *fiber.Ctx) error {
	ensureInitialized()
	return contactController.HandleContact(c)
}

// HandleContactSubmit - Adapter for contact form submissions
func HandleContactSubmit(c *fiber.Ctx) error {
	ensureInitialized()
	return contactController.HandleSubmit(c)
}

// HandleBlogIndex - Adapter for the blog list
func HandleBlogIndex(c *fiber.Ctx) error {
	ensureInitialized()
	return blogController.HandleIndex(c)
}

// HandleBlogShow - Adapter for a blog post
func HandleBlogShow(c *fiber.Ctx) error {
	ensureInitialized()
	return blogController.HandleShow(c)
}

// HandleResourcesIndex - Adapter for the resource library
func HandleResourcesIndex(c *fiber.Ctx) error {
	ensureInitialized()
	return resourceController.HandleIndex(c)
}

// HandleResourceVisit - Adapter for resource link clicks
func HandleResourceVisit(c *fiber.Ctx) error {
	ensureInitialized()
	return resourceController.HandleVisit(c)
}

// HandleResourceDownload - Adapter for resource downloads
func HandleResourceDownload(c *fiber.Ctx) error {
	ensureInitialized()
	return resourceController.HandleDownload(c)
}

// HandleNewsletterSubscribe - Adapter for the newsletter form
func HandleNewsletterSubscribe(c *fiber.Ctx) error {
	ensureInitialized()
	return newsletterController.HandleSubscribe(c)
}

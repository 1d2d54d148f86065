package apiv1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all public server handlers
type ServerInterface interface {
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// (GET /posts)
	ListPosts(c *fiber.Ctx, params ListPostsParams) error
	// (GET /posts/{slug})
	GetPost(c *fiber.Ctx, slug string) error
	// (GET /resources)
	ListResources(c *fiber.Ctx, params ListResourcesParams) error
	// (POST /resources/{id}/download)
	DownloadResource(c *fiber.Ctx, id uint) error
	// (POST /newsletter/subscribe)
	Subscribe(c *fiber.Ctx) error
	// (POST /api/contact)
	PostContact(c *fiber.Ctx) error
}

// AdminServerInterface represents the API key protected handlers
type AdminServerInterface interface {
	// (GET /admin/posts)
	AdminListPosts(c *fiber.Ctx) error
	// (POST /admin/posts)
	AdminCreatePost(c *fiber.Ctx) error
	// (PUT /admin/posts/{id})
	AdminUpdatePost(c *fiber.Ctx, id uint) error
	// (DELETE /admin/posts/{id})
	AdminDeletePost(c *fiber.Ctx, id uint) error
	// (GET /admin/resources)
	AdminListResources(c *fiber.Ctx) error
	// (POST /admin/resources)
	AdminCreateResource(c *fiber.Ctx) error
	// (PUT /admin/resources/{id})
	AdminUpdateResource(c *fiber.Ctx, id uint) error
	// (DELETE /admin/resources/{id})
	AdminDeleteResource(c *fiber.Ctx, id uint) error
	// (POST /admin/subscribers/{id}/deactivate)
	AdminDeactivateSubscriber(c *fiber.Ctx, id uint) error
}

// ListPostsParams are the query parameters of GET /posts
type ListPostsParams struct {
	Category string
	Page     int
	PerPage  int
}

// ListResourcesParams are the query parameters of GET /resources
type ListResourcesParams struct {
	Category string
}

// ServerInterfaceWrapper converts fiber contexts to parameters
type ServerInterfaceWrapper struct {
	Handler      ServerInterface
	AdminHandler AdminServerInterface
}

func badParam(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Error{
		Error:   "bad_request",
		Message: "Invalid format for parameter " + name,
	})
}

func pathID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *fiber.Ctx, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// GetPing operation middleware
func (w *ServerInterfaceWrapper) GetPing(c *fiber.Ctx) error {
	return w.Handler.GetPing(c)
}

// ListPosts operation middleware
func (w *ServerInterfaceWrapper) ListPosts(c *fiber.Ctx) error {
	page, ok := queryInt(c, "page")
	if !ok {
		return badParam(c, "page")
	}
	perPage, ok := queryInt(c, "per_page")
	if !ok {
		return badParam(c, "per_page")
	}
	return w.Handler.ListPosts(c, ListPostsParams{Category: c.Query("category"), Page: page, PerPage: perPage})
}

// GetPost operation middleware
func (w *ServerInterfaceWrapper) GetPost(c *fiber.Ctx) error {
	return w.Handler.GetPost(c, c.Params("slug"))
}

// ListResources operation middleware
func (w *ServerInterfaceWrapper) ListResources(c *fiber.Ctx) error {
	return w.Handler.ListResources(c, ListResourcesParams{Category: c.Query("category")})
}

// DownloadResource operation middleware
func (w *ServerInterfaceWrapper) DownloadResource(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badParam(c, "id")
	}
	return w.Handler.DownloadResource(c, id)
}

// Subscribe operation middleware
func (w *ServerInterfaceWrapper) Subscribe(c *fiber.Ctx) error {
	return w.Handler.Subscribe(c)
}

// PostContact operation middleware
func (w *ServerInterfaceWrapper) PostContact(c *fiber.Ctx) error {
	return w.Handler.PostContact(c)
}

func (w *ServerInterfaceWrapper) withID(fn func(*fiber.Ctx, uint) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return badParam(c, "id")
		}
		return fn(c, id)
	}
}

// RegisterHandlers adds each public route to the router
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.Get("/ping", wrapper.GetPing)
	router.Get("/posts", wrapper.ListPosts)
	router.Get("/posts/:slug", wrapper.GetPost)
	router.Get("/resources", wrapper.ListResources)
	router.Post("/resources/:id/download", wrapper.DownloadResource)
	router.Post("/newsletter/subscribe", wrapper.Subscribe)
}

// RegisterAdminHandlers adds the admin routes; authentication is left to the
// middlewares of router
func RegisterAdminHandlers(router fiber.Router, si AdminServerInterface) {
	wrapper := ServerInterfaceWrapper{AdminHandler: si}

	router.Get("/posts", si.AdminListPosts)
	router.Post("/posts", si.AdminCreatePost)
	router.Put("/posts/:id", wrapper.withID(si.AdminUpdatePost))
	router.Delete("/posts/:id", wrapper.withID(si.AdminDeletePost))
	router.Get("/resources", si.AdminListResources)
	router.Post("/resources", si.AdminCreateResource)
	router.Put("/resources/:id", wrapper.withID(si.AdminUpdateResource))
	router.Delete("/resources/:id", wrapper.withID(si.AdminDeleteResource))
	router.Post("/subscribers/:id/deactivate", wrapper.withID(si.AdminDeactivateSubscriber))
}

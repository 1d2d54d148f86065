package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/internal/pkg/contact"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/newsletter"
	"github.com/ManuelReschke/Folio/internal/pkg/statistics"
)

// APIServer implements ServerInterface and AdminServerInterface
type APIServer struct {
	content    *content.Service
	newsletter *newsletter.Service
	contact    *contact.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(posts *content.Service, subscribers *newsletter.Service, mailer *contact.Service) *APIServer {
	return &APIServer{content: posts, newsletter: subscribers, contact: mailer}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// ListPosts returns one page of visible posts
func (s *APIServer) ListPosts(c *fiber.Ctx, params ListPostsParams) error {
	page, err := s.content.ListVisiblePosts(params.Category, params.Page, params.PerPage)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(PostList{
		Items:   page.Items,
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
		Pages:   page.Pages(),
	})
}

// GetPost returns a visible post. Reading through the API does not count a view.
func (s *APIServer) GetPost(c *fiber.Ctx, slug string) error {
	post, err := s.content.GetVisiblePost(slug)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(post)
}

// ListResources returns the visible resources
func (s *APIServer) ListResources(c *fiber.Ctx, params ListResourcesParams) error {
	resources, err := s.content.ListVisibleResources(params.Category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(ResourceList{Items: resources})
}

// DownloadResource counts a download and returns the target URL
func (s *APIServer) DownloadResource(c *fiber.Ctx, id uint) error {
	url, downloads, err := s.content.DownloadResource(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(DownloadResponse{URL: url, Downloads: downloads})
}

// Subscribe adds or reactivates a newsletter subscriber
func (s *APIServer) Subscribe(c *fiber.Ctx) error {
	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	result, err := s.newsletter.Subscribe(req.Email)
	if err != nil {
		return writeError(c, err)
	}
	statistics.Invalidate()

	status := fiber.StatusCreated
	if result.Reactivated {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(SubscribeResponse{Message: result.Message, Reactivated: result.Reactivated})
}

// PostContact mails a contact message to the site owner
func (s *APIServer) PostContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if err := s.contact.Submit(req.ContactMessage, req.CaptchaToken); err != nil {
		return writeError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Message sent"})
}

// AdminListPosts returns every post regardless of status
func (s *APIServer) AdminListPosts(c *fiber.Ctx) error {
	posts, err := s.content.ListPosts()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": posts})
}

// AdminCreatePost creates a post from a JSON body
func (s *APIServer) AdminCreatePost(c *fiber.Ctx) error {
	var in content.PostInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	post, err := s.content.CreatePost(in)
	if err != nil {
		return writeError(c, err)
	}
	statistics.Invalidate()
	return c.Status(fiber.StatusCreated).JSON(post)
}

// AdminUpdatePost replaces the editable fields of a post
func (s *APIServer) AdminUpdatePost(c *fiber.Ctx, id uint) error {
	var in content.PostInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	post, err := s.content.UpdatePost(id, in)
	if err != nil {
		return writeError(c, err)
	}
	statistics.Invalidate()
	return c.JSON(post)
}

// AdminDeletePost removes a post
func (s *APIServer) AdminDeletePost(c *fiber.Ctx, id uint) error {
	if err := s.content.DeletePost(id); err != nil {
		return writeError(c, err)
	}
	statistics.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}

// AdminListResources returns every resource regardless of status
func (s *APIServer) AdminListResources(c *fiber.Ctx) error {
	resources, err := s.content.ListResources()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": resources})
}

// AdminCreateResource creates a resource from a JSON body
func (s *APIServer) AdminCreateResource(c *fiber.Ctx) error {
	var in content.ResourceInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resource, err := s.content.CreateResource(in)
	if err != nil {
		return writeError(c, err)
	}
	statistics.Invalidate()
	return c.Status(fiber.StatusCreated).JSON(resource)
}

// AdminUpdateResource replaces the editable fields of a resource
func (s *APIServer) AdminUpdateResource(c *fiber.Ctx, id uint) error {
	var in content.ResourceInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resource, err := s.content.UpdateResource(id, in)
	if err != nil {
		return writeError(c, err)
	}
	statistics.Invalidate()
	return c.JSON(resource)
}

// AdminDeleteResource removes a resource
func (s *APIServer) AdminDeleteResource(c *fiber.Ctx, id uint) error {
	if err := s.content.DeleteResource(id); err != nil {
		return writeError(c, err)
	}
	statistics.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}

// AdminDeactivateSubscriber marks a subscriber inactive
func (s *APIServer) AdminDeactivateSubscriber(c *fiber.Ctx, id uint) error {
	if err := s.newsletter.Deactivate(id); err != nil {
		return writeError(c, err)
	}
	statistics.Invalidate()
	return c.JSON(MessageResponse{Message: "Subscriber deactivated"})
}

package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/utils"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

const relatedPostsLimit = 3

// BlogController renders the public blog
type BlogController struct {
	content *content.Service
}

// NewBlogController creates a new blog controller
func NewBlogController(svc *content.Service) *BlogController {
	return &BlogController{content: svc}
}

// HandleIndex lists visible posts, optionally filtered by ?category=
func (bc *BlogController) HandleIndex(c *fiber.Ctx) error {
	category := c.Query("category")
	page, err := bc.content.ListVisiblePosts(category, queryPage(c), content.DefaultPageSize)
	if err != nil {
		log.Errorf("[Blog] Failed to list posts: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Posts could not be loaded")
	}
	categories, err := bc.content.PostCategories()
	if err != nil {
		log.Warnf("[Blog] Failed to load categories: %v", err)
	}

	return render(c, "blog/index", newLayout(c, "Blog", &viewmodel.OpenGraph{
		Description: "Articles on research, teaching and data science",
	}), fiber.Map{
		"Posts":      page.Items,
		"Pager":      page,
		"Category":   category,
		"Categories": categories,
	})
}

// HandleShow renders one visible post and counts the view
func (bc *BlogController) HandleShow(c *fiber.Ctx) error {
	post, err := bc.content.GetVisiblePost(c.Params("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return renderNotFound(c)
		}
		log.Errorf("[Blog] Failed to load post %q: %v", c.Params("slug"), err)
		return fiber.NewError(fiber.StatusInternalServerError, "Post could not be loaded")
	}

	if views, err := bc.content.IncrementPostViews(post.ID); err != nil {
		log.Warnf("[Blog] Failed to count view of post %d: %v", post.ID, err)
	} else {
		post.Views = views
	}

	related, err := bc.content.RelatedPosts(post, relatedPostsLimit)
	if err != nil {
		log.Warnf("[Blog] Failed to load related posts: %v", err)
	}

	description := viewmodel.Deref(post.Excerpt)
	if description == "" {
		description = utils.Excerpt(post.Content, 160)
	}
	return render(c, "blog/show", newLayout(c, post.Title, &viewmodel.OpenGraph{
		Description: description,
		Type:        "article",
		Image:       viewmodel.Deref(post.CoverImage),
	}), fiber.Map{
		"Post":    post,
		"Related": related,
	})
}

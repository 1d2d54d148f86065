package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/statistics"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

// PostForm holds the values shown in the post editor. The same form serves
// create and edit; ID is zero for a new post.
type PostForm struct {
	ID          uint
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	Category    string
	Tags        string
	Status      string
	IsFeatured  bool
	CoverImage  string
	PublishedAt string
}

func postFormFrom(post *models.Post) PostForm {
	return PostForm{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Content:     post.Content,
		Excerpt:     viewmodel.Deref(post.Excerpt),
		Category:    viewmodel.Deref(post.Category),
		Tags:        strings.Join(post.Tags, ", "),
		Status:      string(post.Status),
		IsFeatured:  post.IsFeatured,
		CoverImage:  viewmodel.Deref(post.CoverImage),
		PublishedAt: viewmodel.DateInput(post.PublishedAt),
	}
}

func postFormFromRequest(c *fiber.Ctx) PostForm {
	return PostForm{
		Title:       c.FormValue("title"),
		Slug:        c.FormValue("slug"),
		Content:     c.FormValue("content"),
		Excerpt:     c.FormValue("excerpt"),
		Category:    c.FormValue("category"),
		Tags:        c.FormValue("tags"),
		Status:      c.FormValue("status"),
		IsFeatured:  isChecked(c.FormValue("is_featured")),
		CoverImage:  c.FormValue("cover_image"),
		PublishedAt: c.FormValue("published_at"),
	}
}

// Input converts the submitted form into service input
func (f PostForm) Input() (content.PostInput, error) {
	status, err := models.ParseContentStatus(f.Status)
	if err != nil {
		return content.PostInput{}, &content.ValidationError{Err: err}
	}
	publishedAt, err := viewmodel.ParseDateInput(f.PublishedAt)
	if err != nil {
		return content.PostInput{}, &content.ValidationError{Err: fmt.Errorf("invalid publish date %q", f.PublishedAt)}
	}
	return content.PostInput{
		Title:       f.Title,
		Slug:        f.Slug,
		Content:     f.Content,
		Excerpt:     f.Excerpt,
		Category:    f.Category,
		Tags:        content.SplitList(f.Tags),
		Status:      status,
		IsFeatured:  f.IsFeatured,
		CoverImage:  f.CoverImage,
		PublishedAt: publishedAt,
	}, nil
}

// AdminPostController handles the post management screens
type AdminPostController struct {
	content *content.Service
}

// NewAdminPostController creates a new admin post controller
func NewAdminPostController(svc *content.Service) *AdminPostController {
	return &AdminPostController{content: svc}
}

// HandleList renders all posts regardless of status
func (pc *AdminPostController) HandleList(c *fiber.Ctx) error {
	posts, err := pc.content.ListPosts()
	if err != nil {
		return flashError(c, constants.RouteAdmin, errorMessage(err))
	}
	return render(c, "admin/posts/index", adminLayout(c, "Posts"), fiber.Map{
		"Posts": posts,
		"Now":   pc.content.Now(),
	})
}

// HandleCreate renders an empty editor
func (pc *AdminPostController) HandleCreate(c *fiber.Ctx) error {
	return pc.renderForm(c, PostForm{Status: string(models.StatusDraft)}, fiber.StatusOK, "")
}

// HandleStore creates a post from the submitted editor
func (pc *AdminPostController) HandleStore(c *fiber.Ctx) error {
	form := postFormFromRequest(c)
	in, err := form.Input()
	if err == nil {
		_, err = pc.content.CreatePost(in)
	}
	if err != nil {
		return pc.renderForm(c, form, errorStatus(err), errorMessage(err))
	}

	statistics.Invalidate()
	return flashSuccess(c, constants.RouteAdminPosts, "Post created")
}

// HandleEdit renders the editor for an existing post
func (pc *AdminPostController) HandleEdit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return flashError(c, constants.RouteAdminPosts, "Invalid post ID")
	}
	post, err := pc.content.GetPost(id)
	if err != nil {
		return flashError(c, constants.RouteAdminPosts, errorMessage(err))
	}
	return pc.renderForm(c, postFormFrom(post), fiber.StatusOK, "")
}

// HandleUpdate saves the editor of an existing post
func (pc *AdminPostController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return flashError(c, constants.RouteAdminPosts, "Invalid post ID")
	}

	form := postFormFromRequest(c)
	form.ID = id
	in, err := form.Input()
	if err == nil {
		_, err = pc.content.UpdatePost(id, in)
	}
	if err != nil {
		return pc.renderForm(c, form, errorStatus(err), errorMessage(err))
	}

	statistics.Invalidate()
	return flashSuccess(c, constants.RouteAdminPosts, "Post updated")
}

// HandleDelete removes a post
func (pc *AdminPostController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return flashError(c, constants.RouteAdminPosts, "Invalid post ID")
	}
	if err := pc.content.DeletePost(id); err != nil {
		return flashError(c, constants.RouteAdminPosts, errorMessage(err))
	}

	statistics.Invalidate()
	return flashSuccess(c, constants.RouteAdminPosts, "Post deleted")
}

func (pc *AdminPostController) renderForm(c *fiber.Ctx, form PostForm, status int, message string) error {
	page := "New Post"
	action := constants.RouteAdminPosts + "/store"
	if form.ID != 0 {
		page = "Edit Post"
		action = fmt.Sprintf("%s/update/%d", constants.RouteAdminPosts, form.ID)
	}
	layout := adminLayout(c, page)
	if message != "" {
		layout.Msg = fiber.Map{"type": "error", "message": message}
	}
	return render(c.Status(status), "admin/posts/form", layout, fiber.Map{
		"Form":     form,
		"Action":   action,
		"Statuses": []models.ContentStatus{models.StatusDraft, models.StatusPublished, models.StatusScheduled},
	})
}

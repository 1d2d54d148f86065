package controllers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/adminauth"
	"github.com/ManuelReschke/Folio/internal/pkg/cache"
	"github.com/ManuelReschke/Folio/internal/pkg/contact"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/middleware"
	"github.com/ManuelReschke/Folio/internal/pkg/newsletter"
	folioSession "github.com/ManuelReschke/Folio/internal/pkg/session"
	"github.com/ManuelReschke/Folio/internal/pkg/testdb"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

type fakeStore struct {
	puts    map[string][]byte
	deleted []string
}

func (s *fakeStore) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	if s.puts == nil {
		s.puts = map[string][]byte{}
	}
	s.puts[key] = body
	return "https://cdn.example.com/" + key, nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStore) KeyFromURL(u string) (string, bool) {
	key, ok := strings.CutPrefix(u, "https://cdn.example.com/")
	return key, ok && key != ""
}

type testSite struct {
	app     *fiber.App
	repos   *repository.Repositories
	content *content.Service
	store   *fakeStore
	cookies []*http.Cookie
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	cache.SetClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}))
	folioSession.SetSessionStore(session.New(session.Config{KeyLookup: "cookie:session_id"}))

	repos := repository.NewRepositories(testdb.Open(t))
	site := &testSite{repos: repos, content: content.NewServiceFromRepositories(repos), store: &fakeStore{}}

	InitializeControllers(Dependencies{
		Repos:       repos,
		Content:     site.content,
		Newsletter:  newsletter.NewService(repos.Subscriber),
		Contact:     &contact.Service{},
		Credentials: adminauth.Credentials{Username: "admin", Password: "s3cret"},
		Store:       site.store,
	})

	engine := html.New("../../views", ".html")
	engine.AddFuncMap(viewmodel.TemplateFuncs())
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(middleware.AdminContextMiddleware)

	app.Get("/", HandleHome)
	app.Get("/blog", HandleBlogIndex)
	app.Get("/blog/:slug", HandleBlogShow)
	app.Get("/resources", HandleResourcesIndex)
	app.Get("/resources/:id/visit", HandleResourceVisit)
	app.Post("/newsletter", HandleNewsletterSubscribe)
	app.Get("/admin/login", middleware.RedirectIfAdmin, HandleAdminLogin)
	app.Post("/admin/login", HandleAdminLogin)
	app.Get("/admin", middleware.RequireAdmin, HandleAdminDashboard)
	app.Get("/admin/posts", middleware.RequireAdmin, HandleAdminPosts)
	app.Post("/admin/posts/store", middleware.RequireAdmin, HandleAdminPostStore)
	app.Post("/admin/uploads", middleware.RequireAdminJSON, HandleAdminUpload)
	app.Post("/admin/uploads/delete", middleware.RequireAdminJSON, HandleAdminUploadDelete)
	app.Use(HandleNotFound)

	site.app = app
	return site
}

func (s *testSite) request(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (s *testSite) get(t *testing.T, path string) *http.Response {
	t.Helper()
	return s.request(t, httptest.NewRequest("GET", path, nil))
}

func (s *testSite) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.request(t, req)
}

func (s *testSite) login(t *testing.T) {
	t.Helper()
	resp := s.postForm(t, "/admin/login", url.Values{"username": {"admin"}, "password": {"s3cret"}})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			s.cookies = append(s.cookies, c)
		}
	}
	require.NotEmpty(t, s.cookies)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
	site := newTestSite(t)
	resp := site.postForm(t, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))

	resp = site.get(t, "/admin")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestLogin_OpensDashboard(t *testing.T) {
	site := newTestSite(t)
	site.login(t)

	resp := site.get(t, "/admin")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Dashboard")
	assert.Contains(t, html, "Logout (admin)")

	// the login page sends a signed-in admin on to the dashboard
	resp = site.get(t, "/admin/login")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestAdminPostStore_ValidationRerendersForm(t *testing.T) {
	site := newTestSite(t)
	site.login(t)

	resp := site.postForm(t, "/admin/posts/store", url.Values{"title": {""}, "content": {"Body"}, "status": {"draft"}})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body(t, resp), `name="content"`)

	posts, err := site.content.ListPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestAdminPostStore_CreatesPost(t *testing.T) {
	site := newTestSite(t)
	site.login(t)

	resp := site.postForm(t, "/admin/posts/store", url.Values{
		"title":   {"Teaching Statistics"},
		"content": {"First paragraph"},
		"tags":    {"stats, teaching"},
		"status":  {"published"},
	})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/posts", resp.Header.Get("Location"))

	post, err := site.repos.Post.GetBySlug("teaching-statistics")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, post.Status)
	assert.Equal(t, []string{"stats", "teaching"}, post.Tags)

	resp = site.get(t, "/admin/posts")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Teaching Statistics")
}

func TestBlogShow(t *testing.T) {
	site := newTestSite(t)
	post, err := site.content.CreatePost(content.PostInput{Title: "Hello Readers", Content: "Line one\nLine two", Status: models.StatusPublished})
	require.NoError(t, err)
	_, err = site.content.CreatePost(content.PostInput{Title: "Unfinished", Content: "x"})
	require.NoError(t, err)

	resp := site.get(t, "/blog/"+post.Slug)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html := body(t, resp)
	assert.Contains(t, html, "Hello Readers")
	assert.Contains(t, html, "Line one<br>Line two")

	stored, err := site.content.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Views)

	resp = site.get(t, "/blog/unfinished")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body(t, resp), "404")

	resp = site.get(t, "/blog")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	html = body(t, resp)
	assert.Contains(t, html, "Hello Readers")
	assert.NotContains(t, html, "Unfinished")
}

func TestResourceVisit_RedirectsAndCounts(t *testing.T) {
	site := newTestSite(t)
	resource, err := site.content.CreateResource(content.ResourceInput{
		Title:       "Course Notes",
		Description: "Lecture notes",
		Category:    models.ResourceCategories[0],
		Status:      models.StatusPublished,
		WebsiteURL:  "https://example.com/notes",
	})
	require.NoError(t, err)

	resp := site.get(t, "/resources/"+itoa(resource.ID)+"/visit")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://example.com/notes", resp.Header.Get("Location"))

	stored, err := site.content.GetResource(resource.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Views)

	resp = site.get(t, "/resources/999/visit")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = site.get(t, "/resources")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Course Notes")
}

func TestNewsletterSubscribe_RedirectsBack(t *testing.T) {
	site := newTestSite(t)

	resp := site.postForm(t, "/newsletter", url.Values{"email": {"fan@example.com"}, "return_to": {"/blog"}})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/blog", resp.Header.Get("Location"))

	sub, err := site.repos.Subscriber.GetByEmail("fan@example.com")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)

	resp = site.postForm(t, "/newsletter", url.Values{"email": {"other@example.com"}, "return_to": {"https://evil.example.com"}})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestHome_Renders(t *testing.T) {
	site := newTestSite(t)
	_, err := site.content.CreatePost(content.PostInput{Title: "Latest Thoughts", Content: "Body", Status: models.StatusPublished})
	require.NoError(t, err)

	resp := site.get(t, "/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Latest Thoughts")

	resp = site.get(t, "/no-such-page")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename string, data []byte, folder string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	if folder != "" {
		require.NoError(t, w.WriteField("folder", folder))
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest("POST", "/admin/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAdminUpload(t *testing.T) {
	site := newTestSite(t)

	resp := site.request(t, multipartUpload(t, "cover.png", pngBytes(t), "covers"))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	site.login(t)

	resp = site.request(t, multipartUpload(t, "cover.png", pngBytes(t), "covers"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	text := body(t, resp)
	assert.Contains(t, text, "https://cdn.example.com/covers/")
	require.Len(t, site.store.puts, 1)

	resp = site.request(t, multipartUpload(t, "notes.txt", []byte("just some text"), ""))
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)

	resp = site.request(t, multipartUpload(t, "cover.png", pngBytes(t), "../etc"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var key string
	for k := range site.store.puts {
		key = k
	}
	resp = site.postForm(t, "/admin/uploads/delete", url.Values{"url": {"https://cdn.example.com/" + key}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{key}, site.store.deleted)

	resp = site.postForm(t, "/admin/uploads/delete", url.Values{"url": {"https://elsewhere.example.com/x.png"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminUpload_DisabledStore(t *testing.T) {
	site := newTestSite(t)
	site.login(t)
	adminUploadController = NewAdminUploadController(nil)

	resp := site.request(t, multipartUpload(t, "cover.png", pngBytes(t), ""))
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestSafeRedirect(t *testing.T) {
	tests := map[string]string{
		"":                    "/",
		"/blog":               "/blog",
		"//evil.example.com":  "/",
		"https://example.com": "/",
		"/\\evil":             "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeRedirect(in, "/"), in)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

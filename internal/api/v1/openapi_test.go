package apiv1

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiberParam = regexp.MustCompile(`:(\w+)`)

func loadOpenAPI(t *testing.T) *openapi3.T {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromFile("../../../public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	return doc
}

func TestOpenAPIDocumentsEveryRoute(t *testing.T) {
	doc := loadOpenAPI(t)

	app := fiber.New()
	server := &APIServer{}
	RegisterHandlers(app, server)
	RegisterAdminHandlers(app.Group("/admin"), server)

	for _, route := range app.GetRoutes(true) {
		if route.Method == fiber.MethodHead {
			continue
		}
		path := fiberParam.ReplaceAllString(route.Path, "{$1}")
		item := doc.Paths.Find(path)
		if !assert.NotNil(t, item, "undocumented path %s", path) {
			continue
		}
		assert.NotNil(t, item.GetOperation(strings.ToUpper(route.Method)), "undocumented %s %s", route.Method, path)
	}
}

func TestOpenAPIDocumentsContact(t *testing.T) {
	doc := loadOpenAPI(t)
	item := doc.Paths.Find("/contact")
	require.NotNil(t, item)
	assert.NotNil(t, item.Post)
}

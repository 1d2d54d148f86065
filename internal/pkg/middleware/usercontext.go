package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/internal/pkg/session"
	"github.com/ManuelReschke/Folio/internal/pkg/usercontext"
)

// AdminContextMiddleware loads the admin flag from the server-side session
// for every request.
func AdminContextMiddleware(c *fiber.Ctx) error {
	// goth keeps its own session store on /auth/*
	if strings.HasPrefix(c.Path(), "/auth/") {
		return c.Next()
	}

	store := session.GetSessionStore()
	if store == nil {
		usercontext.Set(c, usercontext.AdminContext{})
		return c.Next()
	}

	sess, err := store.Get(c)
	if err != nil {
		usercontext.Set(c, usercontext.AdminContext{})
		return c.Next()
	}

	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)
	if !isAdmin {
		usercontext.Set(c, usercontext.AdminContext{})
		return c.Next()
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)
	loginVia, _ := sess.Get(usercontext.KeyLoginVia).(string)
	usercontext.Set(c, usercontext.AdminContext{
		Username: username,
		IsAdmin:  true,
		LoginVia: loginVia,
	})
	return c.Next()
}

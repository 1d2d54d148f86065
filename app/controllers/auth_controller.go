package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/internal/pkg/adminauth"
	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/session"
	"github.com/ManuelReschke/Folio/internal/pkg/usercontext"
)

const (
	loginViaPassword = "password"
	loginViaOAuth    = "oauth"
)

// AuthController handles the admin login gate
type AuthController struct {
	creds adminauth.Credentials
}

// NewAuthController creates an auth controller for the given credentials
func NewAuthController(creds adminauth.Credentials) *AuthController {
	return &AuthController{creds: creds}
}

// HandleLogin renders the login form (GET) and checks the credentials (POST)
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return render(c, "admin/login", newLayout(c, "Admin Login", nil), fiber.Map{
			"Configured": ac.creds.Configured(),
		})
	}

	username := c.FormValue("username")
	err := ac.creds.Verify(username, c.FormValue("password"))
	if err != nil {
		if errors.Is(err, adminauth.ErrNotConfigured) {
			log.Warn("[Auth] Login attempt while ADMIN_USERNAME/ADMIN_PASSWORD are not set")
		} else {
			log.Warnf("[Auth] Failed admin login from %s", GetClientIP(c))
		}
		// same message for unknown user and wrong password
		return flashError(c, constants.RouteAdminLogin, "Invalid username or password")
	}

	if err := startAdminSession(c, ac.creds.Username, loginViaPassword); err != nil {
		log.Errorf("[Auth] Failed to start session: %v", err)
		return flashError(c, constants.RouteAdminLogin, "Login failed, please try again")
	}

	log.Infof("[Auth] Admin %s logged in from %s", ac.creds.Username, GetClientIP(c))
	return flashSuccess(c, constants.RouteAdmin, "Welcome back!")
}

// HandleLogout ends the admin session
func (ac *AuthController) HandleLogout(c *fiber.Ctx) error {
	if err := session.Destroy(c); err != nil {
		log.Errorf("[Auth] Failed to destroy session: %v", err)
	}
	return flashSuccess(c, constants.RouteAdminLogin, "You have been logged out")
}

// startAdminSession marks the current session as admin under a fresh id
func startAdminSession(c *fiber.Ctx, username, via string) error {
	store := session.GetSessionStore()
	if store == nil {
		return errors.New("session store not initialized")
	}
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(usercontext.KeyIsAdmin, true)
	sess.Set(usercontext.KeyUsername, username)
	sess.Set(usercontext.KeyLoginVia, via)
	return sess.Save()
}

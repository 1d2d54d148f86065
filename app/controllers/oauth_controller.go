package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/ManuelReschke/Folio/internal/pkg/adminauth"
	"github.com/ManuelReschke/Folio/internal/pkg/constants"
)

// OAuthController signs in the admin through an external provider
type OAuthController struct {
	creds adminauth.Credentials
}

// NewOAuthController creates an OAuth controller for the given credentials
func NewOAuthController(creds adminauth.Credentials) *OAuthController {
	return &OAuthController{creds: creds}
}

// HandleCallback completes the provider flow and admits allow-listed emails
func (oc *OAuthController) HandleCallback(c *fiber.Ctx) error {
	u, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		log.Warnf("[OAuth] Completing provider login failed: %v", err)
		return flashError(c, constants.RouteAdminLogin, "Sign-in with the provider failed")
	}

	if !oc.creds.AllowsEmail(u.Email) {
		log.Warnf("[OAuth] Rejected %s login for %q", u.Provider, u.Email)
		return flashError(c, constants.RouteAdminLogin, "This account is not allowed to access the admin panel")
	}

	name := firstNonEmpty(u.Name, u.NickName, u.Email)
	if err := startAdminSession(c, name, loginViaOAuth+":"+u.Provider); err != nil {
		log.Errorf("[OAuth] Failed to start session: %v", err)
		return flashError(c, constants.RouteAdminLogin, "Login failed, please try again")
	}

	log.Infof("[OAuth] Admin %s logged in via %s", u.Email, u.Provider)
	return flashSuccess(c, constants.RouteAdmin, "Welcome back!")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

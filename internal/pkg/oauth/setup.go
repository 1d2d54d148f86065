package oauth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/ManuelReschke/Folio/internal/pkg/env"
	foliosession "github.com/ManuelReschke/Folio/internal/pkg/session"
)

// Providers returns the names of the providers with configured credentials
func Providers() []string {
	var names []string
	if env.GetEnv("GOOGLE_KEY", "") != "" && env.GetEnv("GOOGLE_SECRET", "") != "" {
		names = append(names, "google")
	}
	if env.GetEnv("GITHUB_KEY", "") != "" && env.GetEnv("GITHUB_SECRET", "") != "" {
		names = append(names, "github")
	}
	return names
}

// Enabled reports whether any admin OAuth provider is configured
func Enabled() bool {
	return len(Providers()) > 0 && len(env.GetList("ADMIN_OAUTH_EMAILS")) > 0
}

// Setup registers the configured goth providers and the Redis session store
// holding the OAuth state. It is safe to call multiple times.
func Setup() {
	base := strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", ""), "/")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "4000")
	}

	var providers []goth.Provider
	for _, name := range Providers() {
		switch name {
		case "google":
			providers = append(providers, google.New(
				env.GetEnv("GOOGLE_KEY", ""),
				env.GetEnv("GOOGLE_SECRET", ""),
				base+"/auth/google/callback",
				"email", "profile",
			))
		case "github":
			providers = append(providers, github.New(
				env.GetEnv("GITHUB_KEY", ""),
				env.GetEnv("GITHUB_SECRET", ""),
				base+"/auth/github/callback",
				"user:email",
			))
		}
	}
	if len(providers) == 0 {
		return
	}
	goth.UseProviders(providers...)

	// OAuth state lives next to the app sessions in a separate Redis database
	host, port, password := foliosession.RedisAddress()
	gothfiber.SessionStore = session.New(session.Config{
		Storage: redisstorage.New(redisstorage.Config{
			Host:     host,
			Port:     port,
			Password: password,
			Database: 2,
			Reset:    false,
		}),
		KeyLookup:      "cookie:" + gothic.SessionName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   !env.IsDev(),
		Expiration:     time.Hour,
	})
}

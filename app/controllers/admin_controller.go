package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/scheduler"
	"github.com/ManuelReschke/Folio/internal/pkg/statistics"
)

const dashboardRecentPosts = 5

// AdminController renders the admin dashboard
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with repositories
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{repos: repos}
}

// HandleDashboard shows content totals and the latest posts
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	stats, err := statistics.CollectDashboard(ac.repos, dashboardRecentPosts)
	if err != nil {
		log.Errorf("[Admin] Failed to collect dashboard statistics: %v", err)
		layout := adminLayout(c, "Dashboard")
		layout.Msg = fiber.Map{"type": "error", "message": "Statistics are currently unavailable"}
		return render(c, "admin/dashboard", layout, fiber.Map{"Stats": statistics.Dashboard{}})
	}

	schedulerRunning := false
	if m := scheduler.GetManager(); m != nil {
		schedulerRunning = m.IsRunning()
	}

	return render(c, "admin/dashboard", adminLayout(c, "Dashboard"), fiber.Map{
		"Stats":            stats,
		"SchedulerRunning": schedulerRunning,
	})
}

package route

import (
	"github.com/gofiber/fiber/v2"

	statsController "skillup_backend/internals/features/home/stats/controller"
	"skillup_backend/internals/features/home/stats/repository"
)

// StatsRoutes: agregasi publik untuk landing page.
func StatsRoutes(app fiber.Router, store repository.StatsStore) {
	ctrl := statsController.NewStatsController(store)

	app.Get("/top-teachers", ctrl.TopTeachers)
	app.Get("/featured-courses", ctrl.FeaturedCourses)
	app.Get("/stats", ctrl.SiteStats)
}

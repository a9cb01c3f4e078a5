// file: internals/features/home/stats/controller/stats_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"skillup_backend/internals/features/home/stats/repository"
	helper "skillup_backend/internals/helpers"
)

type StatsController struct {
	Store repository.StatsStore
}

func NewStatsController(store repository.StatsStore) *StatsController {
	return &StatsController{Store: store}
}

// =======================
// 🏆 GET /top-teachers?limit=
// Default tanpa batas; limit opsional dari client.
// =======================
func (ctrl *StatsController) TopTeachers(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "0"), 10, 64)

	teachers, err := ctrl.Store.TopTeachers(c.UserContext(), limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", teachers)
}

// =======================
// ⭐ GET /featured-courses (4 course approve ter-enroll)
// =======================
func (ctrl *StatsController) FeaturedCourses(c *fiber.Ctx) error {
	courses, err := ctrl.Store.FeaturedCourses(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", courses)
}

// =======================
// 📊 GET /stats
// =======================
func (ctrl *StatsController) SiteStats(c *fiber.Ctx) error {
	stats, err := ctrl.Store.SiteStats(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", stats)
}

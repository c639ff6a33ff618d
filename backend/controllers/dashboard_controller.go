package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trak/backend/config"
	"trak/backend/services"
	"trak/backend/utils"
)

type DashboardController struct {
	Cfg       *config.Config
	Dashboard *services.DashboardService
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{Cfg: cfg, Dashboard: services.NewDashboardService(db)}
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Returns total study days, current streak and most studied course
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/summary [get]
func (dc *DashboardController) GetSummary(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	totalStudyDays, err := dc.Dashboard.TotalStudyDays(userID)
	if err != nil {
		return serviceError(c, err)
	}
	currentStreak, err := dc.Dashboard.CurrentStreak(userID)
	if err != nil {
		return serviceError(c, err)
	}
	mostStudied, err := dc.Dashboard.MostStudiedCourse(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"total_study_days":    totalStudyDays,
		"current_streak":      currentStreak,
		"most_studied_course": mostStudied,
	})
}

// GetChecklist returns the user's courses with last-studied timestamps.
func (dc *DashboardController) GetChecklist(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	items, err := dc.Dashboard.ChecklistItems(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(items)
}

// GetRecentSessions returns the most recent study sessions, newest first.
func (dc *DashboardController) GetRecentSessions(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	limit := c.QueryInt("limit", 5)
	sessions, err := dc.Dashboard.RecentSessions(userID, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(sessions)
}

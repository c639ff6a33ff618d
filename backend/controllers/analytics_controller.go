package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trak/backend/config"
	"trak/backend/services"
	"trak/backend/utils"
)

type AnalyticsController struct {
	Cfg       *config.Config
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{Cfg: cfg, Analytics: services.NewAnalyticsService(db)}
}

// GetAnalytics godoc
// @Summary Per-course study days over a range
// @Description Counts distinct study days per course within the range ending today
// @Tags analytics
// @Produce json
// @Param range query string false "Date range, e.g. '7d', '30d', '90d'" default(30d)
// @Success 200 {object} services.AnalyticsReport
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /analytics [get]
func (ac *AnalyticsController) GetAnalytics(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	rangeInDays, err := parseRange(c.Query("range", "30d"))
	if err != nil {
		return utils.BadRequest(c, "Invalid date range format. Use 'Xd' where X is a number (e.g., '7d').")
	}

	report, err := ac.Analytics.CourseStudyDays(userID, rangeInDays)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(report)
}

// parseRange turns a range string like "30d" into a day count.
func parseRange(s string) (int, error) {
	if !strings.HasSuffix(s, "d") {
		return 0, strconv.ErrSyntax
	}
	days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
	if err != nil {
		return 0, err
	}
	if days < 1 {
		return 0, strconv.ErrRange
	}
	return days, nil
}

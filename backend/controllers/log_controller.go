package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trak/backend/config"
	"trak/backend/services"
	"trak/backend/utils"
)

type LogController struct {
	Cfg  *config.Config
	Logs *services.LogService
}

func NewLogController(db *gorm.DB, cfg *config.Config) *LogController {
	return &LogController{Cfg: cfg, Logs: services.NewLogService(db)}
}

// LogStudySessions godoc
// @Summary Log today's study sessions
// @Description Records one study session per course for today, idempotently
// @Tags logs
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /logs [post]
func (lc *LogController) LogStudySessions(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, lc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type LogInput struct {
		CourseNames []string `json:"course_names"`
	}

	var input LogInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result, err := lc.Logs.LogStudySessions(userID, input.CourseNames)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        "Study sessions logged successfully.",
		"logged_courses": result.LoggedCourses,
	})
}

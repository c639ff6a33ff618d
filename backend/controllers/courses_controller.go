package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"trak/backend/config"
	"trak/backend/services"
	"trak/backend/utils"
)

type CoursesController struct {
	Cfg     *config.Config
	Courses *services.CourseService
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{Cfg: cfg, Courses: services.NewCourseService(db)}
}

// CreateCourses godoc
// @Summary Register courses for the current user
// @Description Creates the named courses and links them to the user
// @Tags courses
// @Accept json
// @Produce json
// @Success 201 {array} models.Course
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses [post]
func (cc *CoursesController) CreateCourses(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input []struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	names := make([]string, 0, len(input))
	for _, item := range input {
		names = append(names, item.Name)
	}

	created, err := cc.Courses.CreateCourses(userID, names)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetCourses returns the current user's courses ordered by name.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courses, err := cc.Courses.RetrieveUserCourses(userID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(courses)
}

package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/tracking"
	"academy/backend/utils"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

func orderedModules(db *gorm.DB) *gorm.DB {
	return db.Order("modules.sequence_order")
}

func orderedLessons(db *gorm.DB) *gorm.DB {
	return db.Order("lessons.sequence_order")
}

func (cc *CoursesController) catalog() ([]models.Course, error) {
	var courses []models.Course
	err := cc.DB.Preload("Modules", orderedModules).
		Preload("Modules.Lessons", orderedLessons).
		Find(&courses).Error
	return courses, err
}

// ListCourses godoc
// @Summary List the catalog as lightweight summaries
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.catalog()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	summaries := make([]models.CourseSummary, 0, len(courses))
	for i := range courses {
		summaries = append(summaries, courses[i].Summary())
	}
	return utils.Success(c, fiber.StatusOK, summaries)
}

// GetCourse returns the full projection with modules and lessons. This is
// the upgrade path from the summary served by ListCourses.
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	err = cc.DB.Preload("Modules", orderedModules).
		Preload("Modules.Lessons", orderedLessons).
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

// MyCourses is the student dashboard: the assignment list resolved against
// the catalog, each course annotated with completion, plus aggregate tallies.
func (cc *CoursesController) MyCourses(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var user models.User
	if err := cc.DB.First(&user, userID).Error; err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	catalog, err := cc.catalog()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var records []models.CourseProgress
	if err := cc.DB.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	progress := make(map[uint]tracking.LessonSet, len(records))
	for _, r := range records {
		progress[r.CourseID] = tracking.NewLessonSet(r.LessonIDs()...)
	}

	visible := tracking.ResolveAccess(user.AssignedIDs(), catalog)

	cards := make([]fiber.Map, 0, len(visible))
	for _, course := range visible {
		completed := progress[course.ID]
		cards = append(cards, fiber.Map{
			"id":        course.ID,
			"title":     course.Title,
			"cover_url": course.CoverURL,
			"lessons":   course.LessonCount(),
			"completed": len(completed),
			"percent":   tracking.Percent(course, completed),
			"status":    tracking.Classify(course, completed),
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses": cards,
		"summary": tracking.Summarize(visible, progress),
	})
}

// CreateCourse godoc
// @Summary Create a course with nested modules and lessons
// @Tags courses
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if course.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	course.AuthorID = userID
	for i := range course.Modules {
		if course.Modules[i].SequenceOrder == 0 {
			course.Modules[i].SequenceOrder = i + 1
		}
		for j := range course.Modules[i].Lessons {
			if course.Modules[i].Lessons[j].SequenceOrder == 0 {
				course.Modules[i].Lessons[j].SequenceOrder = j + 1
			}
		}
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return utils.Created(c, course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Title       string `json:"title"`
		ShortDesc   string `json:"short_desc"`
		Description string `json:"description"`
		CoverURL    string `json:"cover_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if input.Title != "" {
		course.Title = input.Title
	}
	if input.ShortDesc != "" {
		course.ShortDesc = input.ShortDesc
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.CoverURL != "" {
		course.CoverURL = input.CoverURL
	}

	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := cc.DB.Delete(&models.Course{}, courseID).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}

	return utils.NoContent(c)
}

// AddModule appends a module to a course, sequenced after existing ones.
func (cc *CoursesController) AddModule(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var moduleCount int64
	cc.DB.Model(&models.Module{}).Where("course_id = ?", courseID).Count(&moduleCount)

	module := models.Module{
		CourseID:      uint(courseID),
		Title:         input.Title,
		SequenceOrder: int(moduleCount) + 1,
	}
	if err := cc.DB.Create(&module).Error; err != nil {
		return utils.InternalServerError(c, "Could not create module")
	}

	return utils.Created(c, module)
}

// AddLesson appends a lesson to a module, sequenced after existing ones.
func (cc *CoursesController) AddLesson(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(c.Params("moduleId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}

	var input struct {
		Title           string `json:"title"`
		VideoURL        string `json:"video_url"`
		DurationSeconds int    `json:"duration_seconds"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var module models.Module
	if err := cc.DB.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Module not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var lessonCount int64
	cc.DB.Model(&models.Lesson{}).Where("module_id = ?", moduleID).Count(&lessonCount)

	lesson := models.Lesson{
		ModuleID:        uint(moduleID),
		Title:           input.Title,
		VideoURL:        input.VideoURL,
		DurationSeconds: input.DurationSeconds,
		SequenceOrder:   int(lessonCount) + 1,
	}
	if err := cc.DB.Create(&lesson).Error; err != nil {
		return utils.InternalServerError(c, "Could not create lesson")
	}

	return utils.Created(c, lesson)
}

package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/utils"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// GetProgress godoc
// @Summary Completed-lesson sets for the caller, keyed by course id
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var records []models.CourseProgress
	pc.DB.Where("user_id = ?", userID).Find(&records)

	byCourse := make(map[uint][]uint, len(records))
	for _, r := range records {
		ids := r.LessonIDs()
		if ids == nil {
			ids = []uint{}
		}
		byCourse[r.CourseID] = ids
	}

	return utils.Success(c, fiber.StatusOK, byCourse)
}

// GetAllProgress returns every student's progress. Admin only.
func (pc *ProgressController) GetAllProgress(c *fiber.Ctx) error {
	var records []models.CourseProgress
	pc.DB.Find(&records)

	// student id -> course id -> lesson ids
	global := make(map[uint]map[uint][]uint)
	for _, r := range records {
		if global[r.UserID] == nil {
			global[r.UserID] = make(map[uint][]uint)
		}
		ids := r.LessonIDs()
		if ids == nil {
			ids = []uint{}
		}
		global[r.UserID][r.CourseID] = ids
	}

	return utils.Success(c, fiber.StatusOK, global)
}

// UpdateProgress replaces the caller's completed-lesson set for one course.
// Ids that do not belong to the course are dropped before the write.
func (pc *ProgressController) UpdateProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	courseID, err := strconv.Atoi(c.Params("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		LessonIDs []uint `json:"lesson_ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	err = pc.DB.Preload("Modules.Lessons").First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	known := make(map[uint]bool, course.LessonCount())
	for _, id := range course.LessonIDs() {
		known[id] = true
	}
	valid := make([]uint, 0, len(input.LessonIDs))
	for _, id := range input.LessonIDs {
		if known[id] {
			valid = append(valid, id)
		}
	}

	var progress models.CourseProgress
	err = pc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.InternalServerError(c, "Could not query database")
		}
		progress = models.CourseProgress{UserID: userID, CourseID: uint(courseID)}
	}
	progress.SetLessonIDs(valid)

	if err := pc.DB.Save(&progress).Error; err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"course_id":  courseID,
		"lesson_ids": valid,
	})
}

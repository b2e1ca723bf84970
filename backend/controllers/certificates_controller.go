package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/tracking"
	"academy/backend/utils"
)

type CertificatesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCertificatesController(db *gorm.DB, cfg *config.Config) *CertificatesController {
	return &CertificatesController{DB: db, Cfg: cfg}
}

// gormCertificateCreator adapts the certificates table to
// tracking.CertificateCreator, mapping the unique-index violation to the
// issuer's duplicate error.
type gormCertificateCreator struct {
	db *gorm.DB
}

func (g gormCertificateCreator) CreateCertificate(ctx context.Context, cert models.Certificate) (models.Certificate, error) {
	if err := g.db.WithContext(ctx).Create(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Certificate{}, tracking.ErrDuplicateCertificate
		}
		return models.Certificate{}, err
	}
	return cert, nil
}

// ListCertificates returns the caller's certificates, newest first.
func (cc *CertificatesController) ListCertificates(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var certs []models.Certificate
	if err := cc.DB.Where("user_id = ?", userID).Order("issued_at DESC").Find(&certs).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, certs)
}

// CreateCertificate godoc
// @Summary Claim a completion certificate for a course
// @Tags certificates
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /certificates [post]
func (cc *CertificatesController) CreateCertificate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var input struct {
		CourseID uint `json:"course_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := cc.DB.First(&user, userID).Error; err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var course models.Course
	err := cc.DB.Preload("Modules.Lessons").First(&course, input.CourseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// A certificate only makes sense for a fully completed course.
	var progress models.CourseProgress
	cc.DB.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&progress)
	completed := tracking.NewLessonSet(progress.LessonIDs()...)
	if tracking.Classify(course, completed) != tracking.Completed {
		return utils.Error(c, fiber.StatusUnprocessableEntity,
			errors.New("course is not completed"))
	}

	var existing []models.Certificate
	cc.DB.Where("user_id = ?", userID).Find(&existing)

	cert, err := tracking.Claim(c.Context(), gormCertificateCreator{cc.DB}, userID, user.Name, course, existing)
	if err != nil {
		if errors.Is(err, tracking.ErrAlreadyClaimed) {
			return utils.Conflict(c, err.Error())
		}
		return utils.InternalServerError(c, "Could not create certificate")
	}

	return utils.Created(c, cert)
}

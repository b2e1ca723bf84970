package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/utils"
)

type PackagesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPackagesController(db *gorm.DB, cfg *config.Config) *PackagesController {
	return &PackagesController{DB: db, Cfg: cfg}
}

// ListPackages is public: the pricing page renders before login.
func (pc *PackagesController) ListPackages(c *fiber.Ctx) error {
	var packages []models.Package
	if err := pc.DB.Order("price_cents").Find(&packages).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return utils.Success(c, fiber.StatusOK, packages)
}

func (pc *PackagesController) CreatePackage(c *fiber.Ctx) error {
	var pkg models.Package
	if err := c.BodyParser(&pkg); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if pkg.Name == "" {
		return utils.BadRequest(c, "Name is required")
	}

	if err := pc.DB.Create(&pkg).Error; err != nil {
		return utils.InternalServerError(c, "Could not create package")
	}
	return utils.Created(c, pkg)
}

func (pc *PackagesController) DeletePackage(c *fiber.Ctx) error {
	packageID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid package ID")
	}

	if err := pc.DB.Delete(&models.Package{}, packageID).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete package")
	}
	return utils.NoContent(c)
}

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

type TicketsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewTicketsController(db *gorm.DB, cfg *config.Config) *TicketsController {
	return &TicketsController{DB: db, Cfg: cfg}
}

// ListTickets returns the caller's tickets; admins see all of them.
func (tc *TicketsController) ListTickets(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var user models.User
	if err := tc.DB.First(&user, userID).Error; err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	query := tc.DB.Order("created_at DESC")
	if user.Role != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var tickets []models.Ticket
	if err := query.Find(&tickets).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, tickets)
}

func (tc *TicketsController) CreateTicket(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var input struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Subject == "" {
		return utils.BadRequest(c, "Subject is required")
	}

	ticket := models.Ticket{
		UserID:  userID,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.TicketOpen,
	}
	if err := tc.DB.Create(&ticket).Error; err != nil {
		return utils.InternalServerError(c, "Could not create ticket")
	}

	return utils.Created(c, ticket)
}

// CloseTicket marks a ticket resolved. Admin only.
func (tc *TicketsController) CloseTicket(c *fiber.Ctx) error {
	ticketID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid ticket ID")
	}

	var ticket models.Ticket
	if err := tc.DB.First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Ticket not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	ticket.Status = models.TicketClosed
	if err := tc.DB.Save(&ticket).Error; err != nil {
		return utils.InternalServerError(c, "Could not update ticket")
	}

	return utils.Success(c, fiber.StatusOK, ticket)
}

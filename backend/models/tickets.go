package models

import "gorm.io/gorm"

const (
	TicketOpen   = "open"
	TicketClosed = "closed"
)

// Ticket is a support request filed by a student.
type Ticket struct {
	gorm.Model
	UserID  uint   `json:"user_id"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status" gorm:"default:open"` // open, closed
}

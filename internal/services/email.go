package services

import (
	"log"

	"seat-ticketing-platform/internal/models"
)

// LogEmailService is the default EmailServiceInterface implementation. It
// records what would have been sent; swapping in a real provider only needs a
// different implementation wired at startup.
type LogEmailService struct{}

// NewLogEmailService creates an email service that logs instead of sending
func NewLogEmailService() *LogEmailService {
	return &LogEmailService{}
}

// SendTicketConfirmation logs the confirmation that would be emailed
func (s *LogEmailService) SendTicketConfirmation(movement *models.Movement, tickets []*models.Ticket) error {
	log.Printf("email: ticket confirmation for %s (%s): %d tickets, total %.2f",
		movement.CustomerEmail, movement.Reference, len(tickets), movement.TotalInCurrency())
	return nil
}

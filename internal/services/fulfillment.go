package services

import (
	"errors"
	"fmt"
	"log"

	"seat-ticketing-platform/internal/models"
	"seat-ticketing-platform/internal/utils"
)

// FulfillmentService materializes paid checkout sessions into durable order
// records. Every step is idempotent: the movement's session id uniqueness
// makes concurrent materializations of the same session converge on one
// record, and the movement status tells a resumed run which steps remain.
type FulfillmentService struct {
	movementRepo MovementRepository
	ticketRepo   TicketRepository
	seatRepo     SeatRepository
	userRepo     UserRepository
	processor    PaymentProcessor
	emailService EmailServiceInterface
}

// NewFulfillmentService creates a new fulfillment service
func NewFulfillmentService(movementRepo MovementRepository, ticketRepo TicketRepository, seatRepo SeatRepository, userRepo UserRepository, processor PaymentProcessor, emailService EmailServiceInterface) *FulfillmentService {
	return &FulfillmentService{
		movementRepo: movementRepo,
		ticketRepo:   ticketRepo,
		seatRepo:     seatRepo,
		userRepo:     userRepo,
		processor:    processor,
		emailService: emailService,
	}
}

// Materialize turns a confirmed payment into a movement with its tickets and
// seat reservations. Calling it twice for the same session returns the same
// movement id; a run that finds a half-finished movement resumes from the
// recorded status instead of repeating completed steps.
func (s *FulfillmentService) Materialize(meta *SessionMetadata, payment *PaymentInfo) (int, error) {
	buyer, err := s.resolveBuyer(meta)
	if err != nil {
		return 0, err
	}

	summary := models.Summarize(meta.Items)
	movement, created, err := s.movementRepo.CreateIfAbsent(&models.MovementCreateRequest{
		UserID:          buyer.ID,
		EventID:         meta.EventID,
		Subtotal:        summary.Subtotal,
		ServiceCharge:   summary.ServiceCharge,
		Total:           summary.Total,
		PaymentType:     payment.PaymentType,
		CardBrand:       payment.CardBrand,
		CustomerEmail:   meta.CustomerEmail,
		CustomerName:    meta.CustomerName,
		SessionID:       payment.SessionID,
		PaymentIntentID: payment.PaymentIntentID,
		Status:          models.MovementPending,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to record movement for session %s: %w", payment.SessionID, err)
	}

	if !created && movement.IsTerminal() {
		// A previous run already finished (or cancelled) this session.
		return movement.ID, nil
	}

	if err := s.resumeMaterialization(movement, meta, payment); err != nil {
		s.cancelMovement(movement.ID, err.Error())
		return movement.ID, err
	}

	s.sendConfirmation(movement.ID)
	return movement.ID, nil
}

// resumeMaterialization runs the remaining fulfillment steps for a movement,
// skipping any step its recorded status shows as already done
func (s *FulfillmentService) resumeMaterialization(movement *models.Movement, meta *SessionMetadata, payment *PaymentInfo) error {
	status := movement.Status

	if status == models.MovementPending {
		if err := s.createTickets(movement, meta); err != nil {
			return err
		}
		if err := s.movementRepo.UpdateStatus(movement.ID, models.MovementTicketsCreated, ""); err != nil {
			return fmt.Errorf("failed to advance movement %d: %w", movement.ID, err)
		}
		status = models.MovementTicketsCreated
	}

	if status == models.MovementTicketsCreated {
		if err := s.occupySeats(meta); err != nil {
			return err
		}
		if err := s.movementRepo.UpdateStatus(movement.ID, models.MovementSeatsReserved, ""); err != nil {
			return fmt.Errorf("failed to advance movement %d: %w", movement.ID, err)
		}
		status = models.MovementSeatsReserved
	}

	if status == models.MovementSeatsReserved {
		if err := s.movementRepo.UpdatePaymentInfo(movement.ID, payment.PaymentType, payment.CardBrand, payment.PaymentIntentID); err != nil {
			return fmt.Errorf("failed to record payment details on movement %d: %w", movement.ID, err)
		}
		if err := s.movementRepo.UpdateStatus(movement.ID, models.MovementPaid, ""); err != nil {
			return fmt.Errorf("failed to finalize movement %d: %w", movement.ID, err)
		}
	}

	return nil
}

// resolveBuyer finds the account for the session's customer email, creating a
// guest account with an unguessable password when none exists
func (s *FulfillmentService) resolveBuyer(meta *SessionMetadata) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(meta.CustomerEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up buyer %s: %w", meta.CustomerEmail, err)
	}

	password, err := utils.GenerateSecureToken(24)
	if err != nil {
		return nil, fmt.Errorf("failed to generate guest password: %w", err)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash guest password: %w", err)
	}

	name := meta.CustomerName
	if name == "" {
		name = meta.CustomerEmail
	}
	user, err = s.userRepo.Create(&models.UserCreateRequest{
		Email: meta.CustomerEmail,
		Name:  name,
		Role:  models.RoleUser,
	}, hash)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEntry) {
			// Another materialization created the account first.
			return s.userRepo.GetByEmail(meta.CustomerEmail)
		}
		return nil, fmt.Errorf("failed to create guest account for %s: %w", meta.CustomerEmail, err)
	}
	return user, nil
}

// createTickets creates one ticket per admission unit and links each to the
// movement. General items with quantity n produce n tickets.
func (s *FulfillmentService) createTickets(movement *models.Movement, meta *SessionMetadata) error {
	for _, item := range meta.Items {
		for i := 0; i < item.EffectiveQuantity(); i++ {
			req := &models.TicketCreateRequest{
				EventID: meta.EventID,
				UserID:  movement.UserID,
				Zone:    item.Zone,
				Price:   item.Price,
			}
			switch item.Kind {
			case models.CartItemSeat:
				req.Kind = models.TicketSeat
				req.Row = item.Row
				req.Seat = item.Seat
			default:
				req.Kind = models.TicketGeneral
			}

			ticket, err := s.ticketRepo.Create(req)
			if err != nil {
				return fmt.Errorf("failed to create ticket for movement %d: %w", movement.ID, err)
			}
			if err := s.ticketRepo.LinkToMovement(movement.ID, ticket.ID); err != nil {
				return fmt.Errorf("failed to link ticket %d to movement %d: %w", ticket.ID, movement.ID, err)
			}
		}
	}
	return nil
}

// occupySeats marks the session's reserved seats as occupied. Seats another
// sale already took cannot be claimed again; payment has settled by now, so a
// shortfall is an operational incident rather than a user-facing failure, and
// it is reported as an error for the caller to record. On a shortfall the
// seats this call did claim are released again, never the ones earlier sales
// own.
func (s *FulfillmentService) occupySeats(meta *SessionMetadata) error {
	seatIDs := meta.SeatIDs()
	if len(seatIDs) == 0 {
		return nil
	}

	claimed, err := s.seatRepo.Occupy(seatIDs)
	if err != nil {
		return fmt.Errorf("failed to occupy seats %v: %w", seatIDs, err)
	}
	if len(claimed) != len(seatIDs) {
		if len(claimed) > 0 {
			if _, relErr := s.seatRepo.Release(claimed); relErr != nil {
				log.Printf("fulfillment: failed to release partially claimed seats %v: %v", claimed, relErr)
			}
		}
		return fmt.Errorf("%w: only %d of %d seats could be occupied", models.ErrSeatUnavailable, len(claimed), len(seatIDs))
	}
	return nil
}

// HandleCheckoutCompleted processes a successful checkout notification from
// the payment processor. It converges with inline verification: whichever
// path runs first creates the movement, the other finds it already there.
func (s *FulfillmentService) HandleCheckoutCompleted(details *SessionDetails) error {
	if details.PaymentStatus != "paid" {
		log.Printf("webhook: ignoring completed session %s with payment status %q", details.SessionID, details.PaymentStatus)
		return nil
	}

	meta, err := ParseSessionMetadata(details.Metadata)
	if err != nil {
		return fmt.Errorf("completed session %s has unusable metadata: %w", details.SessionID, err)
	}
	if details.CustomerEmail != "" {
		meta.CustomerEmail = details.CustomerEmail
	}
	if details.CustomerName != "" {
		meta.CustomerName = details.CustomerName
	}

	_, err = s.Materialize(meta, &PaymentInfo{
		SessionID:       details.SessionID,
		PaymentIntentID: details.PaymentIntentID,
		PaymentType:     details.PaymentType,
		CardBrand:       s.processor.CardBrand(details.PaymentIntentID),
	})
	return err
}

// HandleSessionExpired cancels the movement behind an abandoned checkout
// session. Sessions that never produced a movement expire silently.
func (s *FulfillmentService) HandleSessionExpired(sessionID string) error {
	movement, err := s.movementRepo.GetBySessionID(sessionID)
	if errors.Is(err, models.ErrMovementNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up movement for expired session %s: %w", sessionID, err)
	}

	if !movement.CanBeCancelled() {
		log.Printf("webhook: expired session %s already %s, leaving movement %d untouched", sessionID, movement.Status, movement.ID)
		return nil
	}
	return s.movementRepo.UpdateStatus(movement.ID, models.MovementCancelled, "checkout session expired")
}

// HandlePaymentFailed cancels a movement after the processor reports its
// payment failed
func (s *FulfillmentService) HandlePaymentFailed(movementID int, reason string) error {
	movement, err := s.movementRepo.GetByID(movementID)
	if errors.Is(err, models.ErrMovementNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !movement.CanBeCancelled() {
		return nil
	}
	if reason == "" {
		reason = "payment failed"
	}
	return s.movementRepo.UpdateStatus(movement.ID, models.MovementCancelled, reason)
}

// cancelMovement records a fulfillment failure without masking the original error
func (s *FulfillmentService) cancelMovement(movementID int, reason string) {
	if err := s.movementRepo.UpdateStatus(movementID, models.MovementCancelled, reason); err != nil {
		log.Printf("failed to cancel movement %d: %v", movementID, err)
	}
}

// sendConfirmation emails the buyer their tickets on a best-effort basis
func (s *FulfillmentService) sendConfirmation(movementID int) {
	if s.emailService == nil {
		return
	}
	movement, err := s.movementRepo.GetByID(movementID)
	if err != nil {
		log.Printf("failed to load movement %d for confirmation email: %v", movementID, err)
		return
	}
	tickets, err := s.ticketRepo.GetByMovement(movementID)
	if err != nil {
		log.Printf("failed to load tickets for movement %d: %v", movementID, err)
		return
	}
	if err := s.emailService.SendTicketConfirmation(movement, tickets); err != nil {
		log.Printf("failed to send confirmation for movement %d: %v", movementID, err)
	}
}

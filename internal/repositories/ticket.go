package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"seat-ticketing-platform/internal/models"
)

// TicketRepository handles ticket data operations
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = `id, code, event_id, user_id, kind, zone, row_label, seat_number, price, created_at`

func scanTicket(row interface{ Scan(...interface{}) error }) (*models.Ticket, error) {
	t := &models.Ticket{}
	err := row.Scan(
		&t.ID,
		&t.Code,
		&t.EventID,
		&t.UserID,
		&t.Kind,
		&t.Zone,
		&t.Row,
		&t.Seat,
		&t.Price,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create creates a ticket with a freshly generated entry code
func (r *TicketRepository) Create(req *models.TicketCreateRequest) (*models.Ticket, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO tickets (code, event_id, user_id, kind, zone, row_label, seat_number, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, ticketColumns)

	ticket, err := scanTicket(r.db.QueryRow(
		query,
		models.GenerateTicketCode(),
		req.EventID,
		req.UserID,
		req.Kind,
		req.Zone,
		req.Row,
		req.Seat,
		req.Price,
		time.Now(),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return ticket, nil
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id int) (*models.Ticket, error) {
	query := fmt.Sprintf("SELECT %s FROM tickets WHERE id = $1", ticketColumns)

	ticket, err := scanTicket(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

// LinkToMovement records the join between a movement and a ticket.
// The composite primary key makes relinking on redelivery a no-op.
func (r *TicketRepository) LinkToMovement(movementID, ticketID int) error {
	query := `
		INSERT INTO movement_tickets (movement_id, ticket_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	if _, err := r.db.Exec(query, movementID, ticketID); err != nil {
		return fmt.Errorf("failed to link ticket to movement: %w", err)
	}

	return nil
}

// GetByMovement retrieves all tickets linked to a movement
func (r *TicketRepository) GetByMovement(movementID int) ([]*models.Ticket, error) {
	query := `
		SELECT t.id, t.code, t.event_id, t.user_id, t.kind, t.zone, t.row_label, t.seat_number, t.price, t.created_at
		FROM tickets t
		JOIN movement_tickets mt ON mt.ticket_id = t.id
		WHERE mt.movement_id = $1
		ORDER BY t.id`

	rows, err := r.db.Query(query, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movement tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

// GetByUser retrieves all tickets belonging to a user
func (r *TicketRepository) GetByUser(userID int) ([]*models.Ticket, error) {
	query := fmt.Sprintf("SELECT %s FROM tickets WHERE user_id = $1 ORDER BY created_at DESC", ticketColumns)

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

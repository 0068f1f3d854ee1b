package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"seat-ticketing-platform/internal/models"

	"github.com/lib/pq"
)

// SeatRepository handles seat inventory operations
type SeatRepository struct {
	db *sql.DB
}

// NewSeatRepository creates a new seat repository
func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

const seatColumns = `id, venue_id, zone, row_label, seat_number, price, color, pos_x, pos_y, status, created_at, updated_at`

func scanSeat(row interface{ Scan(...interface{}) error }) (*models.Seat, error) {
	s := &models.Seat{}
	err := row.Scan(
		&s.ID,
		&s.VenueID,
		&s.Zone,
		&s.Row,
		&s.Number,
		&s.Price,
		&s.Color,
		&s.PosX,
		&s.PosY,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a seat by ID
func (r *SeatRepository) GetByID(id int) (*models.Seat, error) {
	query := fmt.Sprintf("SELECT %s FROM seats WHERE id = $1", seatColumns)

	seat, err := scanSeat(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrSeatNotFound
		}
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}

	return seat, nil
}

// GetByVenue retrieves the full seat map for a venue
func (r *SeatRepository) GetByVenue(venueID int) ([]*models.Seat, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM seats
		WHERE venue_id = $1
		ORDER BY zone, row_label, seat_number`, seatColumns)

	rows, err := r.db.Query(query, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue seats: %w", err)
	}
	defer rows.Close()

	var seats []*models.Seat
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seats: %w", err)
	}

	return seats, nil
}

// Occupy marks the given seats occupied with a single conditional update.
// Only rows still available are touched, so repeated delivery of the same
// confirmation is harmless and concurrent purchases cannot both claim a seat.
// Returns the ids actually transitioned, so a caller that needed all of them
// can release exactly what this call took.
func (r *SeatRepository) Occupy(seatIDs []int) ([]int, error) {
	if len(seatIDs) == 0 {
		return nil, nil
	}

	query := `
		UPDATE seats
		SET status = $1, updated_at = $2
		WHERE id = ANY($3) AND status = $4
		RETURNING id`

	rows, err := r.db.Query(query, models.SeatOccupied, time.Now(), pq.Array(seatIDs), models.SeatAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to occupy seats: %w", err)
	}
	defer rows.Close()

	var claimed []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan occupied seat: %w", err)
		}
		claimed = append(claimed, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating occupied seats: %w", err)
	}

	return claimed, nil
}

// Release marks the given seats available again (admin/compensation use)
func (r *SeatRepository) Release(seatIDs []int) (int, error) {
	if len(seatIDs) == 0 {
		return 0, nil
	}

	query := `
		UPDATE seats
		SET status = $1, updated_at = $2
		WHERE id = ANY($3) AND status = $4`

	result, err := r.db.Exec(query, models.SeatAvailable, time.Now(), pq.Array(seatIDs), models.SeatOccupied)
	if err != nil {
		return 0, fmt.Errorf("failed to release seats: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// AllAvailable reports whether every seat in the list is still available
func (r *SeatRepository) AllAvailable(seatIDs []int) (bool, error) {
	if len(seatIDs) == 0 {
		return true, nil
	}

	var available int
	query := `SELECT COUNT(*) FROM seats WHERE id = ANY($1) AND status = $2`
	if err := r.db.QueryRow(query, pq.Array(seatIDs), models.SeatAvailable).Scan(&available); err != nil {
		return false, fmt.Errorf("failed to check seat availability: %w", err)
	}

	return available == len(seatIDs), nil
}

// Create inserts a seat into the inventory (venue setup)
func (r *SeatRepository) Create(seat *models.Seat) (*models.Seat, error) {
	if err := seat.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO seats (venue_id, zone, row_label, seat_number, price, color, pos_x, pos_y, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, seatColumns)

	now := time.Now()
	created, err := scanSeat(r.db.QueryRow(
		query,
		seat.VenueID,
		seat.Zone,
		seat.Row,
		seat.Number,
		seat.Price,
		seat.Color,
		seat.PosX,
		seat.PosY,
		seat.Status,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create seat: %w", err)
	}

	return created, nil
}

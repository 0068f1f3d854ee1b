package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"seat-ticketing-platform/internal/models"
)

// EventRepository handles event data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, name, description, event_date, event_time, venue_id, sale_status, online_sales, image_url, created_at, updated_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.Date,
		&e.Time,
		&e.VenueID,
		&e.SaleStatus,
		&e.OnlineSales,
		&e.ImageURL,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create creates a new event
func (r *EventRepository) Create(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO events (name, description, event_date, event_time, venue_id, sale_status, online_sales, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, eventColumns)

	now := time.Now()
	event, err := scanEvent(r.db.QueryRow(
		query,
		req.Name,
		req.Description,
		req.Date,
		req.Time,
		req.VenueID,
		req.SaleStatus,
		req.OnlineSales,
		req.ImageURL,
		now,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id int) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)

	event, err := scanEvent(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// List retrieves all events ordered by date
func (r *EventRepository) List() ([]*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events ORDER BY event_date", eventColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// Update updates an event
func (r *EventRepository) Update(id int, req *models.EventUpdateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE events
		SET name = $2, description = $3, event_date = $4, event_time = $5,
			sale_status = $6, online_sales = $7, image_url = $8, updated_at = $9
		WHERE id = $1
		RETURNING %s`, eventColumns)

	event, err := scanEvent(r.db.QueryRow(
		query,
		id,
		req.Name,
		req.Description,
		req.Date,
		req.Time,
		req.SaleStatus,
		req.OnlineSales,
		req.ImageURL,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// Delete deletes an event that has no movements
func (r *EventRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var movementCount int
	err = tx.QueryRow("SELECT COUNT(*) FROM movements WHERE event_id = $1", id).Scan(&movementCount)
	if err != nil {
		return fmt.Errorf("failed to check event movements: %w", err)
	}
	if movementCount > 0 {
		return fmt.Errorf("cannot delete event with existing movements")
	}

	result, err := tx.Exec("DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrEventNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event deletion: %w", err)
	}

	return nil
}

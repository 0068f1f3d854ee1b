package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"seat-ticketing-platform/internal/models"
)

// MovementRepository handles movement data operations
type MovementRepository struct {
	db *sql.DB
}

// NewMovementRepository creates a new movement repository
func NewMovementRepository(db *sql.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

const movementColumns = `id, reference, user_id, event_id, subtotal, service_charge, total,
	payment_type, card_brand, customer_email, customer_name, session_id,
	payment_intent_id, status, failure_reason, created_at, updated_at`

func scanMovement(row interface{ Scan(...interface{}) error }) (*models.Movement, error) {
	m := &models.Movement{}
	err := row.Scan(
		&m.ID,
		&m.Reference,
		&m.UserID,
		&m.EventID,
		&m.Subtotal,
		&m.ServiceCharge,
		&m.Total,
		&m.PaymentType,
		&m.CardBrand,
		&m.CustomerEmail,
		&m.CustomerName,
		&m.SessionID,
		&m.PaymentIntentID,
		&m.Status,
		&m.FailureReason,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateIfAbsent inserts a movement keyed on its session id. The unique
// constraint on session_id makes the insert conditional: when a concurrent
// writer has already created the movement for this session, the insert is a
// no-op and the existing row is returned with created=false. This is how
// "exactly one movement per paid session" holds under duplicate webhook
// delivery and the verify/webhook race.
func (r *MovementRepository) CreateIfAbsent(req *models.MovementCreateRequest) (*models.Movement, bool, error) {
	if err := req.Validate(); err != nil {
		return nil, false, fmt.Errorf("validation failed: %w", err)
	}

	reference := models.GenerateMovementReference()
	now := time.Now()

	query := fmt.Sprintf(`
		INSERT INTO movements (reference, user_id, event_id, subtotal, service_charge, total,
			payment_type, card_brand, customer_email, customer_name, session_id,
			payment_intent_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (session_id) DO NOTHING
		RETURNING %s`, movementColumns)

	movement, err := scanMovement(r.db.QueryRow(
		query,
		reference,
		req.UserID,
		req.EventID,
		req.Subtotal,
		req.ServiceCharge,
		req.Total,
		req.PaymentType,
		req.CardBrand,
		req.CustomerEmail,
		req.CustomerName,
		req.SessionID,
		req.PaymentIntentID,
		req.Status,
		now,
		now,
	))

	if err == sql.ErrNoRows {
		// Lost the race: another writer created the movement first. Reconcile
		// by re-reading the winner's row.
		existing, err := r.GetBySessionID(req.SessionID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read existing movement after conflict: %w", err)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create movement: %w", err)
	}

	return movement, true, nil
}

// GetByID retrieves a movement by ID
func (r *MovementRepository) GetByID(id int) (*models.Movement, error) {
	query := fmt.Sprintf("SELECT %s FROM movements WHERE id = $1", movementColumns)

	movement, err := scanMovement(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrMovementNotFound
		}
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}

	return movement, nil
}

// GetBySessionID retrieves a movement by its checkout session id
func (r *MovementRepository) GetBySessionID(sessionID string) (*models.Movement, error) {
	query := fmt.Sprintf("SELECT %s FROM movements WHERE session_id = $1", movementColumns)

	movement, err := scanMovement(r.db.QueryRow(query, sessionID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrMovementNotFound
		}
		return nil, fmt.Errorf("failed to get movement by session: %w", err)
	}

	return movement, nil
}

// UpdateStatus updates the movement status, recording a failure reason when
// one is given. Statuses are persisted after every materialization step so a
// crash mid-sequence leaves a resumable record.
func (r *MovementRepository) UpdateStatus(id int, status models.MovementStatus, failureReason string) error {
	query := `UPDATE movements SET status = $2, failure_reason = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(query, id, status, failureReason, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update movement status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrMovementNotFound
	}

	return nil
}

// UpdatePaymentInfo records payment details resolved after confirmation
func (r *MovementRepository) UpdatePaymentInfo(id int, paymentType, cardBrand, paymentIntentID string) error {
	query := `
		UPDATE movements
		SET payment_type = $2, card_brand = $3, payment_intent_id = $4, updated_at = $5
		WHERE id = $1`

	result, err := r.db.Exec(query, id, paymentType, cardBrand, paymentIntentID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update movement payment info: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrMovementNotFound
	}

	return nil
}

// Search searches for movements with filters and pagination
func (r *MovementRepository) Search(filters models.MovementSearchFilters) ([]*models.Movement, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.UserID > 0 {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, filters.UserID)
		argIndex++
	}

	if filters.EventID > 0 {
		conditions = append(conditions, fmt.Sprintf("event_id = $%d", argIndex))
		args = append(args, filters.EventID)
		argIndex++
	}

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	direction := "ASC"
	if filters.SortDesc {
		direction = "DESC"
	}

	if filters.Limit <= 0 {
		filters.Limit = 20
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM movements %s", whereClause)
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to get movement count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM movements
		%s
		ORDER BY created_at %s
		LIMIT $%d OFFSET $%d`,
		movementColumns, whereClause, direction, argIndex, argIndex+1)

	args = append(args, filters.Limit, filters.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search movements: %w", err)
	}
	defer rows.Close()

	var movements []*models.Movement
	for rows.Next() {
		movement, err := scanMovement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan movement: %w", err)
		}
		movements = append(movements, movement)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating movements: %w", err)
	}

	return movements, total, nil
}

// GetMovementCount returns the total number of movements
func (r *MovementRepository) GetMovementCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM movements").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get movement count: %w", err)
	}
	return count, nil
}

// GetTotalRevenue returns the total revenue in cents from paid movements
func (r *MovementRepository) GetTotalRevenue() (int, error) {
	var revenue int
	err := r.db.QueryRow("SELECT COALESCE(SUM(total), 0) FROM movements WHERE status = 'paid'").Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("failed to get total revenue: %w", err)
	}
	return revenue, nil
}

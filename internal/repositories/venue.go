package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"seat-ticketing-platform/internal/models"
)

// VenueRepository handles venue reference data
type VenueRepository struct {
	db *sql.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

const venueColumns = `id, name, address, city, state, country, created_at`

func scanVenue(row interface{ Scan(...interface{}) error }) (*models.Venue, error) {
	v := &models.Venue{}
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Address,
		&v.City,
		&v.State,
		&v.Country,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create creates a new venue
func (r *VenueRepository) Create(venue *models.Venue) (*models.Venue, error) {
	query := fmt.Sprintf(`
		INSERT INTO venues (name, address, city, state, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, venueColumns)

	created, err := scanVenue(r.db.QueryRow(query, venue.Name, venue.Address, venue.City, venue.State, venue.Country, time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	return created, nil
}

// GetByID retrieves a venue by ID
func (r *VenueRepository) GetByID(id int) (*models.Venue, error) {
	query := fmt.Sprintf("SELECT %s FROM venues WHERE id = $1", venueColumns)

	venue, err := scanVenue(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	return venue, nil
}

// List retrieves all venues
func (r *VenueRepository) List() ([]*models.Venue, error) {
	query := fmt.Sprintf("SELECT %s FROM venues ORDER BY name", venueColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, venue)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating venues: %w", err)
	}

	return venues, nil
}

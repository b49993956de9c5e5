package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores bookings in Postgres. Traveler and warning lists
// ride along as jsonb.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a repository on the given pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ErrNotFound is returned when no booking matches the lookup.
var ErrNotFound = errors.New("booking not found")

// Create implements Repository.Create.
func (r *PostgresRepository) Create(ctx context.Context, b *Booking) error {
	const sql = `
		INSERT INTO bookings (
			id, order_id, reference, offer_id, email,
			price, currency, ticketing_option,
			travelers, warnings, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	travelers, err := json.Marshal(b.Travelers)
	if err != nil {
		return fmt.Errorf("encode travelers: %w", err)
	}
	warnings, err := json.Marshal(b.Warnings)
	if err != nil {
		return fmt.Errorf("encode warnings: %w", err)
	}

	_, err = r.pool.Exec(ctx, sql,
		b.ID, b.OrderID, b.Reference, b.OfferID, b.Email,
		b.Price, b.Currency, b.TicketingOption,
		travelers, warnings, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID implements Repository.GetByID.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const sql = `
		SELECT id, order_id, reference, offer_id, email,
		       price, currency, ticketing_option,
		       travelers, warnings, created_at
		FROM bookings
		WHERE id = $1
	`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	return b, nil
}

// ListByEmail implements Repository.ListByEmail.
func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]Booking, error) {
	const sql = `
		SELECT id, order_id, reference, offer_id, email,
		       price, currency, ticketing_option,
		       travelers, warnings, created_at
		FROM bookings
		WHERE email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, sql, email)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b         Booking
		travelers []byte
		warnings  []byte
	)
	err := row.Scan(
		&b.ID, &b.OrderID, &b.Reference, &b.OfferID, &b.Email,
		&b.Price, &b.Currency, &b.TicketingOption,
		&travelers, &warnings, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(travelers, &b.Travelers); err != nil {
		return nil, fmt.Errorf("decode travelers: %w", err)
	}
	if err := json.Unmarshal(warnings, &b.Warnings); err != nil {
		return nil, fmt.Errorf("decode warnings: %w", err)
	}
	return &b, nil
}

var _ Repository = (*PostgresRepository)(nil)

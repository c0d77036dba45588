package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doltonsedward/toraja-hillstop/internal/config"
	"github.com/doltonsedward/toraja-hillstop/internal/model"
)

// Postgres writes booking records straight into a bookings table using
// pgx (no ORM), for deployments that run their own database instead of
// Supabase.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPool creates and validates a pgxpool connection pool. It retries
// up to 5 times to accommodate containers starting up.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	// Sensible pool defaults for a small service.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= 5; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if pingErr := pool.Ping(ctx); pingErr == nil {
				break
			}
			pool.Close()
		}
		log.Printf("db connect attempt %d/5 failed: %v – retrying in 2s", attempt, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return pool, nil
}

// NewPostgres constructs a Postgres store over an existing pool.
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Enabled() bool { return true }

// Insert appends one booking record.
func (p *Postgres) Insert(ctx context.Context, b *model.Booking) error {
	var email *string
	if b.GuestEmail != "" {
		email = &b.GuestEmail
	}
	var roomID *string
	if b.RoomID != "" {
		roomID = &b.RoomID
	}

	_, err := p.db.Exec(ctx,
		`INSERT INTO bookings (
			id, guest_name, guest_phone, guest_email,
			check_in_date, check_out_date,
			number_of_guests, number_of_rooms, room_id,
			total_price, status, payment_status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		b.ID, b.GuestName, b.GuestPhone, email,
		b.CheckInDate, b.CheckOutDate,
		b.NumberOfGuests, b.NumberOfRooms, roomID,
		b.TotalPrice, b.Status, b.PaymentStatus, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

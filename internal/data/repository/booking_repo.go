package repository

import (
	"context"
	"fmt"
	"time"

	"hawc-booking/internal/data/entity"
	"hawc-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateIfAbsent writes the booking unless one with the same id exists.
	// Returns true when this call created the record. Because ids are
	// derived from the external event, concurrent reconciliations converge
	// on a single write.
	CreateIfAbsent(ctx context.Context, booking *entity.Booking) (bool, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string, limit int) ([]*entity.Booking, error)
	// FindByResourceBefore returns bookings for the resource whose start
	// precedes the given instant, a superset of everything that can overlap
	// a candidate interval ending there.
	FindByResourceBefore(ctx context.Context, resourceID string, before time.Time) ([]*entity.Booking, error)
	MarkNotified(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, user_email, resource_id, resource_name, type, location,
		start_at, end_at, total, payment_method, payment_id, emailed, created_at`

func (r *bookingRepository) CreateIfAbsent(ctx context.Context, booking *entity.Booking) (bool, error) {
	query := `
		INSERT INTO bookings (id, user_id, user_email, resource_id, resource_name, type, location,
		                      start_at, end_at, total, payment_method, payment_id, emailed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.UserEmail,
		booking.ResourceID,
		booking.ResourceName,
		booking.Type,
		booking.Location,
		booking.Start,
		booking.End,
		booking.Total,
		booking.PaymentMethod,
		booking.PaymentID,
		booking.Emailed,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.String("user_id", booking.UserID),
		)
		return false, fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	created := result.RowsAffected() == 1
	if created {
		r.log.Info("Booking created",
			zap.String("booking_id", booking.ID),
			zap.String("resource_id", booking.ResourceID),
			zap.String("payment_method", booking.PaymentMethod),
		)
	}

	return created, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY start_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindByResourceBefore(ctx context.Context, resourceID string, before time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE resource_id = $1 AND start_at < $2
		ORDER BY start_at
	`

	rows, err := r.db.Query(ctx, query, resourceID, before)
	if err != nil {
		r.log.Error("Failed to find bookings by resource",
			zap.Error(err),
			zap.String("resource_id", resourceID),
		)
		return nil, fmt.Errorf("find bookings for resource %s: %w", resourceID, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) MarkNotified(ctx context.Context, id string) error {
	query := `UPDATE bookings SET emailed = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark booking notified",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("mark booking %s notified: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.UserEmail,
		&booking.ResourceID,
		&booking.ResourceName,
		&booking.Type,
		&booking.Location,
		&booking.Start,
		&booking.End,
		&booking.Total,
		&booking.PaymentMethod,
		&booking.PaymentID,
		&booking.Emailed,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// Package repository implements all database queries for the event
// registration system. It uses pgx directly (no ORM) for transparency:
// every operation is a single parameterized statement, except the
// event delete which runs one transaction.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alifrahman-dev/event-registration-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateUser is returned when a username is already taken.
var ErrDuplicateUser = errors.New("username already exists")

// ErrAlreadyRegistered is returned when the same (user, event) pair
// registers twice.
var ErrAlreadyRegistered = errors.New("user already registered for this event")

// ErrInvalidReference is returned when a registration names a user or
// event that does not exist.
var ErrInvalidReference = errors.New("user or event does not exist")

// ErrUnavailable is returned when the database cannot be reached.
var ErrUnavailable = errors.New("store unavailable")

// Postgres error codes used to classify constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// pgErrCode extracts the Postgres error code from err, or "" when err
// did not originate from the server.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapErr wraps err with op, tagging connection-level failures as
// ErrUnavailable so the boundary can report 503 rather than 500.
func wrapErr(op string, err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and assigns the generated id back onto it.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO events (title, event_date, location, capacity, fee)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING event_id`,
		event.Title, dateArg(event.Date), event.Location, event.Capacity, feeArg(event.Fee),
	).Scan(&event.ID)
	if err != nil {
		return wrapErr("insert event", err)
	}
	return nil
}

// List returns every event in storage order.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT event_id, title, event_date, location, capacity, fee FROM events`,
	)
	if err != nil {
		return nil, wrapErr("list events", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetByID returns a single event or ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT event_id, title, event_date, location, capacity, fee
		 FROM events WHERE event_id = $1`,
		id,
	)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("get event", err)
	}
	return &e, nil
}

// Update rewrites every column of the matching row, binding NULL for
// an absent date or fee. Returns ErrNotFound when no row matched.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET title = $1, event_date = $2, location = $3, capacity = $4, fee = $5
		 WHERE event_id = $6`,
		event.Title, dateArg(event.Date), event.Location, event.Capacity, feeArg(event.Fee),
		event.ID,
	)
	if err != nil {
		return wrapErr("update event", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the event's registrations and then the event itself
// inside a single transaction, so a failure cannot leave orphaned
// registration rows.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return wrapErr("begin delete", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM registrations WHERE event_id = $1`, id,
	); err != nil {
		return wrapErr("delete registrations", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return wrapErr("delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr("commit delete", err)
	}
	return nil
}

// scanEvent maps one events row, converting the nullable date and fee
// columns to nil pointers.
func scanEvent(row pgx.Row) (model.Event, error) {
	var (
		e    model.Event
		date pgtype.Date
		fee  decimal.NullDecimal
	)
	if err := row.Scan(&e.ID, &e.Title, &date, &e.Location, &e.Capacity, &fee); err != nil {
		return model.Event{}, err
	}
	if date.Valid {
		d := model.DateOf(date.Time)
		e.Date = &d
	}
	if fee.Valid {
		e.Fee = &fee.Decimal
	}
	return e, nil
}

func dateArg(d *model.Date) any {
	if d == nil {
		return nil
	}
	return d.Time()
}

func feeArg(f *decimal.Decimal) any {
	if f == nil {
		return nil
	}
	return *f
}

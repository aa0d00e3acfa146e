package repository

import (
	"context"
	"fmt"

	"github.com/alifrahman-dev/event-registration-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistrationRepository handles persistence for user-to-event
// registration links.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Register inserts a link row with a server-assigned timestamp.
// A duplicate (user, event) pair comes back as ErrAlreadyRegistered
// and a missing user or event as ErrInvalidReference, so the boundary
// can report the specific cause.
func (r *RegistrationRepository) Register(ctx context.Context, userID, eventID int64) (*model.Registration, error) {
	reg := &model.Registration{UserID: userID, EventID: eventID}
	err := r.db.QueryRow(ctx,
		`INSERT INTO registrations (user_id, event_id, registration_date)
		 VALUES ($1, $2, now())
		 RETURNING registration_date`,
		userID, eventID,
	).Scan(&reg.RegisteredAt)
	if err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return nil, ErrAlreadyRegistered
		case codeForeignKeyViolation:
			return nil, ErrInvalidReference
		}
		return nil, wrapErr("insert registration", err)
	}
	return reg, nil
}

// ListByEvent returns all registrations for a given event, oldest
// first.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, event_id, registration_date
		 FROM registrations
		 WHERE event_id = $1
		 ORDER BY registration_date ASC`,
		eventID,
	)
	if err != nil {
		return nil, wrapErr("list registrations", err)
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(&reg.UserID, &reg.EventID, &reg.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// Package model defines the core domain types for the event
// registration system.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Fees are serialized as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Event is a bookable event. ID is zero until the event has been
// persisted. Date and Fee are nil when absent.
type Event struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	Date     *Date            `json:"date"`
	Location string           `json:"location"`
	Capacity int              `json:"capacity"`
	Fee      *decimal.Decimal `json:"fee"`
}

// User is an account holder. Username is the unique business key used
// for login; Email exists only on in-memory demo objects and is never
// persisted. A non-empty RegistrationToken marks the user as a
// registered event attendee.
type User struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	Username          string `json:"username"`
	Password          string `json:"password,omitempty"`
	RegistrationToken string `json:"registration_token,omitempty"`
}

// NewAttendee builds a registered attendee with a freshly minted
// registration token.
func NewAttendee(name, email string) User {
	return User{
		Name:              name,
		Email:             email,
		RegistrationToken: uuid.NewString(),
	}
}

// RoleLabel describes the user's role based on whether they carry a
// registration token.
func (u User) RoleLabel() string {
	if u.RegistrationToken != "" {
		return "Registered Event Attendee"
	}
	return "Standard User"
}

// Registration links a user to an event. The timestamp is assigned by
// the database at insert time.
type Registration struct {
	UserID       int64     `json:"user_id"`
	EventID      int64     `json:"event_id"`
	RegisteredAt time.Time `json:"registration_date"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

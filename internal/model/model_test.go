package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestRoleLabel(t *testing.T) {
	standard := User{Name: "Bob Smith", Email: "bob@example.com"}
	if got := standard.RoleLabel(); got != "Standard User" {
		t.Errorf("expected Standard User, got %q", got)
	}

	attendee := NewAttendee("Alice Johnson", "alice@example.com")
	if got := attendee.RoleLabel(); got != "Registered Event Attendee" {
		t.Errorf("expected Registered Event Attendee, got %q", got)
	}
}

func TestNewAttendeeToken(t *testing.T) {
	a := NewAttendee("Alice Johnson", "alice@example.com")
	if a.RegistrationToken == "" {
		t.Fatal("expected a registration token")
	}
	if _, err := uuid.Parse(a.RegistrationToken); err != nil {
		t.Errorf("token is not a valid uuid: %v", err)
	}

	b := NewAttendee("Alice Johnson", "alice@example.com")
	if a.RegistrationToken == b.RegistrationToken {
		t.Error("expected distinct tokens per attendee")
	}
}

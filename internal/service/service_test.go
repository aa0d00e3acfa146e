package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alifrahman-dev/event-registration-service/internal/model"
	"github.com/alifrahman-dev/event-registration-service/internal/repository"
)

// stubEventStore returns a fixed error from every operation.
type stubEventStore struct {
	err error
}

func (s *stubEventStore) Create(context.Context, *model.Event) error { return s.err }
func (s *stubEventStore) List(context.Context) ([]model.Event, error) {
	return nil, s.err
}
func (s *stubEventStore) GetByID(context.Context, int64) (*model.Event, error) {
	return nil, s.err
}
func (s *stubEventStore) Update(context.Context, *model.Event) error { return s.err }
func (s *stubEventStore) Delete(context.Context, int64) error        { return s.err }

func TestServicePassesSentinelsThrough(t *testing.T) {
	svc := NewEventService(&stubEventStore{err: repository.ErrNotFound})

	if _, err := svc.GetEvent(context.Background(), 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetEvent: expected ErrNotFound, got %v", err)
	}
	if err := svc.UpdateEvent(context.Background(), &model.Event{ID: 42}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateEvent: expected ErrNotFound, got %v", err)
	}
	if err := svc.DeleteEvent(context.Background(), 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("DeleteEvent: expected ErrNotFound, got %v", err)
	}
}

func TestServicePassesUnavailableThrough(t *testing.T) {
	svc := NewEventService(&stubEventStore{err: repository.ErrUnavailable})

	if _, err := svc.ListEvents(context.Background()); !errors.Is(err, repository.ErrUnavailable) {
		t.Errorf("ListEvents: expected ErrUnavailable, got %v", err)
	}
	if err := svc.CreateEvent(context.Background(), &model.Event{}); !errors.Is(err, repository.ErrUnavailable) {
		t.Errorf("CreateEvent: expected ErrUnavailable, got %v", err)
	}
}

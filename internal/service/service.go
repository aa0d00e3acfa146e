// Package service sits between the HTTP handlers and the repository
// layer. It is deliberately a thin pass-through: no capacity checks,
// duplicate prevention or date validation happen here — every rule
// this system enforces lives in the database schema.
package service

import (
	"context"
	"log"

	"github.com/alifrahman-dev/event-registration-service/internal/model"
)

// EventStore is the persistence surface the service needs for events.
// *repository.EventRepository satisfies it.
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	List(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService orchestrates event operations over an EventStore.
type EventService struct {
	events EventStore
}

// NewEventService constructs an EventService.
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// CreateEvent persists a new event, assigning its generated id.
func (s *EventService) CreateEvent(ctx context.Context, event *model.Event) error {
	if err := s.events.Create(ctx, event); err != nil {
		log.Printf("service: create event: %v", err)
		return err
	}
	return nil
}

// ListEvents returns all events.
func (s *EventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		log.Printf("service: list events: %v", err)
		return nil, err
	}
	return events, nil
}

// GetEvent returns a single event by id.
func (s *EventService) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		log.Printf("service: get event %d: %v", id, err)
		return nil, err
	}
	return event, nil
}

// UpdateEvent rewrites an existing event, matching on its id.
func (s *EventService) UpdateEvent(ctx context.Context, event *model.Event) error {
	if err := s.events.Update(ctx, event); err != nil {
		log.Printf("service: update event %d: %v", event.ID, err)
		return err
	}
	return nil
}

// DeleteEvent removes an event together with its registrations.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.events.Delete(ctx, id); err != nil {
		log.Printf("service: delete event %d: %v", id, err)
		return err
	}
	return nil
}

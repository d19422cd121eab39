package database

import (
	"context"
	"time"

	"github.com/ds124wfegd/club-events/internal/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	// GetAll returns every event ordered by event date, oldest first.
	GetAll(ctx context.Context) ([]*entity.Event, error)
	GetUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error)
	// Delete removes the event and its participants. A missing id is not an error.
	Delete(ctx context.Context, id string) error
}

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entity.Participant) error
	// GetByEventID returns the entries of an event in insertion order.
	GetByEventID(ctx context.Context, eventID string) ([]*entity.Participant, error)
}

type MerchOrderRepository interface {
	// Create stores the order and sets its generated ID.
	Create(ctx context.Context, order *entity.MerchOrder) error
	GetAll(ctx context.Context) ([]*entity.MerchOrder, error)
}

// EventCache keeps the ascending event list read by the public listing.
//
// Every Invalidate bumps a generation counter. A reader takes Generation
// before loading the store and passes it to SetEvents, which stores nothing
// once the generation has moved on.
type EventCache interface {
	GetEvents(ctx context.Context) ([]*entity.Event, bool, error)
	Generation(ctx context.Context) (int64, error)
	SetEvents(ctx context.Context, events []*entity.Event, generation int64) error
	Invalidate(ctx context.Context) error
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/club-events/internal/database"
	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/internal/validation"
	"github.com/sirupsen/logrus"
)

const (
	createEventFailedMessage = "Failed to create event"
	deleteEventFailedMessage = "Failed to delete event"
)

type eventService struct {
	eventRepo database.EventRepository
	cache     database.EventCache
	validator *validation.Validator
	now       Clock
}

// NewEventService builds the event service. cache may be nil, in which case
// the live listing always reads the store.
func NewEventService(
	eventRepo database.EventRepository,
	cache database.EventCache,
	validator *validation.Validator,
	now Clock,
) EventService {
	if now == nil {
		now = time.Now
	}
	return &eventService{
		eventRepo: eventRepo,
		cache:     cache,
		validator: validator,
		now:       now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, form validation.Form) (*entity.Event, error) {
	in, err := s.validator.ParseEvent(form)
	if err != nil {
		return nil, err
	}

	event := entity.NewEvent(in, s.now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, entity.NewPersistenceError(createEventFailedMessage, err)
	}

	logrus.WithFields(logrus.Fields{
		"event_id":      event.ID,
		"title":         event.Title,
		"is_team_based": event.IsTeamBased,
	}).Info("Event created")

	s.invalidate(ctx)
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListLiveEvents returns events dated at or after now, oldest first. The full
// list is cached and filtered on every read, so a stale cache entry never
// brings back an event that has already started.
func (s *eventService) ListLiveEvents(ctx context.Context, now time.Time) ([]*entity.Event, error) {
	if s.cache == nil {
		events, err := s.eventRepo.GetUpcoming(ctx, now)
		if err != nil {
			return nil, fmt.Errorf("failed to list live events: %w", err)
		}
		return events, nil
	}

	events, hit, err := s.cache.GetEvents(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Event cache read failed, falling back to store")
	}
	if !hit {
		// taken before the store read so a concurrent invalidation wins
		generation, genErr := s.cache.Generation(ctx)

		events, err = s.eventRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list live events: %w", err)
		}

		if genErr != nil {
			logrus.WithError(genErr).Warn("Event cache generation read failed, skipping cache write")
		} else if err := s.cache.SetEvents(ctx, events, generation); err != nil {
			logrus.WithError(err).Warn("Event cache write failed")
		}
	}

	return liveEvents(events, now), nil
}

func liveEvents(events []*entity.Event, now time.Time) []*entity.Event {
	live := make([]*entity.Event, 0, len(events))
	for _, event := range events {
		if event.IsLive(now) {
			live = append(live, event)
		}
	}
	return live
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return entity.NewPersistenceError(deleteEventFailedMessage, err)
	}

	logrus.WithField("event_id", id).Info("Event deleted")

	s.invalidate(ctx)
	return nil
}

func (s *eventService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("Event cache invalidation failed")
	}
}

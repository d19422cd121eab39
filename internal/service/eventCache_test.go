package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	rediscache "github.com/ds124wfegd/club-events/internal/database/redis"
	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/internal/validation"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListLiveEventsDoesNotCacheListReadBeforeCreate(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	events := new(mockEventRepo)
	svc := NewEventService(events, rediscache.NewEventCache(client, time.Minute), validation.New(), fixedClock)

	created := &entity.Event{
		ID:          "11111111-1111-1111-1111-111111111111",
		Title:       "Hackathon",
		EventDate:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		MinTeamSize: 2,
		MaxTeamSize: 4,
	}

	// the first reader loads the store, then an admin creates an event
	// before the reader writes its list back to the cache
	events.On("GetAll", mock.Anything).Return([]*entity.Event{}, nil).Run(func(mock.Arguments) {
		_, err := svc.CreateEvent(ctx, eventForm())
		require.NoError(t, err)
	}).Once()
	events.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	live, err := svc.ListLiveEvents(ctx, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, live)

	events.On("GetAll", mock.Anything).Return([]*entity.Event{created}, nil).Once()

	live, err = svc.ListLiveEvents(ctx, fixedNow)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, created.ID, live[0].ID)

	// the fresh list is cached now
	live, err = svc.ListLiveEvents(ctx, fixedNow)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, created.ID, live[0].ID)
	events.AssertNumberOfCalls(t, "GetAll", 2)
	events.AssertExpectations(t)
}

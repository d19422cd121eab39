package service

import (
	"context"
	"time"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	if args.Error(0) == nil {
		event.ID = "11111111-1111-1111-1111-111111111111"
	}
	return args.Error(0)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*entity.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) GetAll(ctx context.Context) ([]*entity.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]*entity.Event)
	return events, args.Error(1)
}

func (m *mockEventRepo) GetUpcoming(ctx context.Context, from time.Time) ([]*entity.Event, error) {
	args := m.Called(ctx, from)
	events, _ := args.Get(0).([]*entity.Event)
	return events, args.Error(1)
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockParticipantRepo struct {
	mock.Mock
}

func (m *mockParticipantRepo) Create(ctx context.Context, p *entity.Participant) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = "22222222-2222-2222-2222-222222222222"
	}
	return args.Error(0)
}

func (m *mockParticipantRepo) GetByEventID(ctx context.Context, eventID string) ([]*entity.Participant, error) {
	args := m.Called(ctx, eventID)
	participants, _ := args.Get(0).([]*entity.Participant)
	return participants, args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.MerchOrder) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil {
		order.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockOrderRepo) GetAll(ctx context.Context) ([]*entity.MerchOrder, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*entity.MerchOrder)
	return orders, args.Error(1)
}

type mockEventCache struct {
	mock.Mock
}

func (m *mockEventCache) GetEvents(ctx context.Context) ([]*entity.Event, bool, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]*entity.Event)
	return events, args.Bool(1), args.Error(2)
}

func (m *mockEventCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	generation, _ := args.Get(0).(int64)
	return generation, args.Error(1)
}

func (m *mockEventCache) SetEvents(ctx context.Context, events []*entity.Event, generation int64) error {
	return m.Called(ctx, events, generation).Error(0)
}

func (m *mockEventCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, n *entity.Notification) error {
	return m.Called(ctx, n).Error(0)
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

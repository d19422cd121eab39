package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	return m.Called(chatID, text).Error(0)
}

type mockQueue struct {
	mock.Mock
}

func (m *mockQueue) Publish(ctx context.Context, message interface{}) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockQueue) Consume(ctx context.Context, handler func(message []byte) error) error {
	return m.Called(ctx, handler).Error(0)
}

func (m *mockQueue) Close() error {
	return m.Called().Error(0)
}

func registrationMessage(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(&entity.Notification{
		Kind:       entity.NotificationRegistration,
		EventID:    "e1",
		EventTitle: "Hackathon",
		Name:       "Byte Club",
		TeamSize:   3,
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return body
}

func TestHandleSendsText(t *testing.T) {
	sender := new(mockSender)
	sender.On("SendMessage", int64(42), `New team registration for "Hackathon": Byte Club (3 members)`).Return(nil).Once()

	err := NewNotificationWorker(nil, sender, 42).Handle(registrationMessage(t))

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestHandleFailures(t *testing.T) {
	sender := new(mockSender)
	sender.On("SendMessage", mock.Anything, mock.Anything).Return(errors.New("chat not found"))
	w := NewNotificationWorker(nil, sender, 42)

	assert.Error(t, w.Handle([]byte("{broken")))
	assert.Error(t, w.Handle(registrationMessage(t)))
}

func TestHandleWithoutSenderLogsOnly(t *testing.T) {
	assert.NoError(t, NewNotificationWorker(nil, nil, 0).Handle(registrationMessage(t)))
}

func TestStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := new(mockQueue)
	queue.On("Consume", ctx, mock.Anything).Return(nil).Once()
	require.NoError(t, NewNotificationWorker(queue, nil, 0).Start(ctx))

	failing := new(mockQueue)
	failing.On("Consume", ctx, mock.Anything).Return(errors.New("channel closed"))
	assert.Error(t, NewNotificationWorker(failing, nil, 0).Start(ctx))

	queue.AssertExpectations(t)
}

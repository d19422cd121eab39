package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/pkg/rabbitMQ"

	"github.com/sirupsen/logrus"
)

// MessageSender delivers a text message to a chat.
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

// NotificationWorker forwards queued admin notifications to a chat.
type NotificationWorker struct {
	queue  rabbitMQ.Queue
	sender MessageSender
	chatID int64
}

// NewNotificationWorker builds the worker. With a nil sender notifications
// are only logged.
func NewNotificationWorker(queue rabbitMQ.Queue, sender MessageSender, chatID int64) *NotificationWorker {
	return &NotificationWorker{
		queue:  queue,
		sender: sender,
		chatID: chatID,
	}
}

// Start subscribes to the queue and returns; messages are handled until ctx
// is cancelled.
func (w *NotificationWorker) Start(ctx context.Context) error {
	if err := w.queue.Consume(ctx, w.Handle); err != nil {
		return fmt.Errorf("failed to start notification worker: %w", err)
	}

	logrus.Info("Notification worker started")
	go func() {
		<-ctx.Done()
		logrus.Info("Notification worker stopped")
	}()
	return nil
}

// Handle processes one queued message. A returned error drops the message.
func (w *NotificationWorker) Handle(message []byte) error {
	var n entity.Notification
	if err := json.Unmarshal(message, &n); err != nil {
		return fmt.Errorf("failed to decode notification: %w", err)
	}

	if w.sender == nil {
		logrus.WithFields(logrus.Fields{
			"kind":     n.Kind,
			"event_id": n.EventID,
		}).Info(n.Text())
		return nil
	}

	if err := w.sender.SendMessage(w.chatID, n.Text()); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	logrus.WithField("kind", n.Kind).Debug("Notification delivered")
	return nil
}

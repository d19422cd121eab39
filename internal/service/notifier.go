package service

import (
	"context"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/pkg/rabbitMQ"
)

// QueueNotifier publishes notifications to the message queue for the
// notification worker.
type QueueNotifier struct {
	queue rabbitMQ.Queue
}

func NewQueueNotifier(q rabbitMQ.Queue) *QueueNotifier {
	return &QueueNotifier{queue: q}
}

func (n *QueueNotifier) Notify(ctx context.Context, notification *entity.Notification) error {
	if n.queue == nil {
		return nil
	}
	return n.queue.Publish(ctx, notification)
}

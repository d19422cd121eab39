package entity

import (
	"fmt"
	"time"
)

type NotificationKind string

const (
	NotificationRegistration NotificationKind = "registration"
	NotificationMerchOrder   NotificationKind = "merch_order"
)

// Notification tells the admins about a new entry. It travels as JSON
// through the notification queue.
type Notification struct {
	Kind       NotificationKind `json:"kind"`
	EventID    string           `json:"event_id,omitempty"`
	EventTitle string           `json:"event_title,omitempty"`
	Name       string           `json:"name"`
	TeamSize   int              `json:"team_size,omitempty"`
	Detail     string           `json:"detail,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func NewRegistrationNotification(event *Event, p *Participant) *Notification {
	name := p.Name
	if p.IsTeamRegistration {
		name = p.TeamName
	}
	return &Notification{
		Kind:       NotificationRegistration,
		EventID:    event.ID,
		EventTitle: event.Title,
		Name:       name,
		TeamSize:   p.TeamSize,
		CreatedAt:  p.SubmittedAt,
	}
}

func NewMerchOrderNotification(order *MerchOrder) *Notification {
	return &Notification{
		Kind:      NotificationMerchOrder,
		Name:      order.Name,
		Detail:    fmt.Sprintf("%s / %s, %d", order.TshirtDesign, order.Size, order.Amount),
		CreatedAt: order.SubmittedAt,
	}
}

// Text renders the notification for a chat message.
func (n *Notification) Text() string {
	switch n.Kind {
	case NotificationRegistration:
		if n.TeamSize > 1 {
			return fmt.Sprintf("New team registration for %q: %s (%d members)", n.EventTitle, n.Name, n.TeamSize)
		}
		return fmt.Sprintf("New registration for %q: %s", n.EventTitle, n.Name)
	case NotificationMerchOrder:
		return fmt.Sprintf("New merch order from %s: %s", n.Name, n.Detail)
	default:
		return fmt.Sprintf("%s: %s", n.Kind, n.Name)
	}
}

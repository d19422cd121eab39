package service

import (
	"context"
	"io"
	"time"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/internal/validation"
)

type EventService interface {
	CreateEvent(ctx context.Context, form validation.Form) (*entity.Event, error)
	GetEventByID(ctx context.Context, id string) (*entity.Event, error)
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	ListLiveEvents(ctx context.Context, now time.Time) ([]*entity.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type RegistrationService interface {
	Register(ctx context.Context, eventID string, form validation.Form) (*entity.Participant, error)
}

type MerchService interface {
	PlaceOrder(ctx context.Context, form validation.Form) (*entity.MerchOrder, error)
	ListOrders(ctx context.Context) ([]*entity.MerchOrder, error)
	Catalog() *Catalog
}

type ParticipantService interface {
	ListParticipants(ctx context.Context, eventID string) ([]entity.ParticipantRow, error)
	ExportCSV(ctx context.Context, eventID string) (*CSVExport, error)
	ToCSV(w io.Writer, rows []entity.ParticipantRow) error
}

type AuthService interface {
	Login(password string) (string, error)
	Authorize(token string) AuthResult
	SessionTTL() time.Duration
}

// Notifier delivers admin notifications about new entries. Delivery is best
// effort: callers log a failure and carry on.
type Notifier interface {
	Notify(ctx context.Context, n *entity.Notification) error
}

// Clock returns the current time. Workflows take one so tests can pin it.
type Clock func() time.Time

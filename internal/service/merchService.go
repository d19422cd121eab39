package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/club-events/internal/database"
	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/internal/validation"
	"github.com/sirupsen/logrus"
)

const (
	orderNotSavedMessage   = "Failed to save the order."
	orderUnexpectedMessage = "An unexpected error occurred."
	memberDesignMessage    = "Member exclusive design is only available to members."
)

// Catalog lists what the order form offers.
type Catalog struct {
	Departments   []string              `json:"departments"`
	TshirtDesigns []entity.TshirtDesign `json:"tshirtDesigns"`
	Sizes         []string              `json:"sizes"`
	BasePrice     int                   `json:"basePrice"`
	ServiceCharge int                   `json:"serviceCharge"`
	Amount        int                   `json:"amount"`
}

type merchService struct {
	orderRepo     database.MerchOrderRepository
	validator     *validation.Validator
	notifier      Notifier
	basePrice     int
	serviceCharge int
	now           Clock
}

func NewMerchService(
	orderRepo database.MerchOrderRepository,
	validator *validation.Validator,
	notifier Notifier,
	basePrice, serviceCharge int,
	now Clock,
) MerchService {
	if now == nil {
		now = time.Now
	}
	return &merchService{
		orderRepo:     orderRepo,
		validator:     validator,
		notifier:      notifier,
		basePrice:     basePrice,
		serviceCharge: serviceCharge,
		now:           now,
	}
}

// PlaceOrder validates and stores a merch order. A member who left the
// design empty gets the member exclusive design.
func (s *merchService) PlaceOrder(ctx context.Context, form validation.Form) (*entity.MerchOrder, error) {
	if validation.IsMember(form) && form.Get("tshirtDesign") == "" {
		form = form.With("tshirtDesign", entity.DesignMemberExclusive)
	}

	in, err := s.validator.ParseMerchOrder(form)
	if err != nil {
		return nil, err
	}
	if !in.DesignAllowed() {
		return nil, entity.NewValidationError(validation.InvalidOrderMessage,
			entity.FieldError{Field: "tshirtDesign", Message: memberDesignMessage})
	}

	order := entity.NewMerchOrder(in, s.amount(), s.now())
	if err := s.orderRepo.Create(ctx, order); err != nil {
		logrus.WithError(err).WithField("reg_no", in.RegNo).Error("Failed to store merch order")
		if errors.Is(err, entity.ErrNoInsertedID) {
			return nil, entity.NewPersistenceError(orderNotSavedMessage, err)
		}
		return nil, entity.NewPersistenceError(orderUnexpectedMessage, err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id":      order.ID.Hex(),
		"tshirt_design": order.TshirtDesign,
		"size":          order.Size,
		"amount":        order.Amount,
	}).Info("Merch order stored")

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, entity.NewMerchOrderNotification(order)); err != nil {
			logrus.WithError(err).Warn("Failed to publish merch order notification")
		}
	}
	return order, nil
}

func (s *merchService) ListOrders(ctx context.Context) ([]*entity.MerchOrder, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list merch orders: %w", err)
	}
	return orders, nil
}

func (s *merchService) Catalog() *Catalog {
	return &Catalog{
		Departments:   entity.Departments,
		TshirtDesigns: entity.TshirtDesigns,
		Sizes:         entity.TshirtSizes,
		BasePrice:     s.basePrice,
		ServiceCharge: s.serviceCharge,
		Amount:        s.amount(),
	}
}

func (s *merchService) amount() int {
	return s.basePrice + s.serviceCharge
}

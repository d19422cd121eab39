package service

import (
	"context"
	"errors"
	"time"

	"github.com/ds124wfegd/club-events/internal/database"
	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/internal/validation"
	"github.com/sirupsen/logrus"
)

const registerFailedMessage = "Failed to register"

type registrationService struct {
	eventRepo       database.EventRepository
	participantRepo database.ParticipantRepository
	validator       *validation.Validator
	notifier        Notifier
	now             Clock
}

// NewRegistrationService builds the registration workflow. notifier may be
// nil to disable admin notifications.
func NewRegistrationService(
	eventRepo database.EventRepository,
	participantRepo database.ParticipantRepository,
	validator *validation.Validator,
	notifier Notifier,
	now Clock,
) RegistrationService {
	if now == nil {
		now = time.Now
	}
	return &registrationService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		validator:       validator,
		notifier:        notifier,
		now:             now,
	}
}

// Register validates a registration form against the event and stores one
// entry. Events whose normalized bounds allow more than one member go through
// the team path; everything else registers individually.
func (s *registrationService) Register(ctx context.Context, eventID string, form validation.Form) (*entity.Participant, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if errors.Is(err, entity.ErrEventNotFound) {
		return nil, entity.ErrEventNotFound
	}
	if err != nil {
		return nil, entity.NewPersistenceError(registerFailedMessage, err)
	}

	var participant *entity.Participant
	if event.IsTeamRegistration() {
		participant, err = s.teamEntry(event, form)
	} else {
		participant, err = s.individualEntry(event, form)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"event_id": event.ID,
			"error":    err.Error(),
		}).Info("Registration rejected")
		return nil, err
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		logrus.WithError(err).WithField("event_id", event.ID).Error("Failed to store registration")
		return nil, entity.NewPersistenceError(registerFailedMessage, err)
	}

	logrus.WithFields(logrus.Fields{
		"event_id":       event.ID,
		"participant_id": participant.ID,
		"team_size":      participant.TeamSize,
	}).Info("Registration stored")

	s.notify(ctx, entity.NewRegistrationNotification(event, participant))
	return participant, nil
}

func (s *registrationService) individualEntry(event *entity.Event, form validation.Form) (*entity.Participant, error) {
	member, err := s.validator.ParseParticipant(form)
	if err != nil {
		return nil, err
	}
	return entity.NewIndividualParticipant(event.ID, *member, s.now()), nil
}

// teamEntry checks the member count before anything else, then the team
// name, then each member in order. The first invalid member rejects the
// whole submission.
func (s *registrationService) teamEntry(event *entity.Event, form validation.Form) (*entity.Participant, error) {
	count, err := validation.ParseTeamCount(form, event.MinTeamSize, event.MaxTeamSize)
	if err != nil {
		return nil, err
	}

	teamName, err := validation.ValidateTeamName(form.Get("teamName"))
	if err != nil {
		return nil, err
	}

	members := make([]entity.TeamMember, 0, count)
	for i := 0; i < count; i++ {
		member, err := s.validator.ParseTeamMember(form, i)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}

	return entity.NewTeamParticipant(event.ID, teamName, members, s.now()), nil
}

func (s *registrationService) notify(ctx context.Context, n *entity.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		logrus.WithError(err).WithField("kind", n.Kind).Warn("Failed to publish notification")
	}
}

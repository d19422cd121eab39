package entity

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestNormalizeTeamBounds(t *testing.T) {
	tests := []struct {
		name             string
		minSize, maxSize *int
		legacy           *int
		wantMin, wantMax int
	}{
		{"explicit bounds", intPtr(2), intPtr(4), nil, 2, 4},
		{"explicit bounds win over legacy", intPtr(2), intPtr(4), intPtr(6), 2, 4},
		{"legacy only", nil, nil, intPtr(3), 3, 3},
		{"legacy fills the missing max", intPtr(2), nil, intPtr(5), 2, 5},
		{"nothing stored", nil, nil, nil, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin, gotMax := NormalizeTeamBounds(tt.minSize, tt.maxSize, tt.legacy)
			assert.Equal(t, tt.wantMin, gotMin)
			assert.Equal(t, tt.wantMax, gotMax)
		})
	}
}

func TestValidTeamConfig(t *testing.T) {
	tests := []struct {
		in   EventInput
		want bool
	}{
		{EventInput{IsTeamBased: false, MinTeamSize: 1, MaxTeamSize: 1}, true},
		{EventInput{IsTeamBased: false, MinTeamSize: 1, MaxTeamSize: 2}, false},
		{EventInput{IsTeamBased: true, MinTeamSize: 2, MaxTeamSize: 2}, true},
		{EventInput{IsTeamBased: true, MinTeamSize: 1, MaxTeamSize: 4}, false},
		{EventInput{IsTeamBased: true, MinTeamSize: 3, MaxTeamSize: 2}, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("team=%v %d-%d", tt.in.IsTeamBased, tt.in.MinTeamSize, tt.in.MaxTeamSize), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ValidTeamConfig())
		})
	}
}

func TestEventRegistrationPath(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&Event{IsTeamBased: true, MaxTeamSize: 2}).IsTeamRegistration())
	assert.False(t, (&Event{IsTeamBased: true, MaxTeamSize: 1}).IsTeamRegistration())
	assert.False(t, (&Event{MaxTeamSize: 4}).IsTeamRegistration())

	assert.True(t, (&Event{EventDate: now}).IsLive(now))
	assert.False(t, (&Event{EventDate: now.Add(-time.Second)}).IsLive(now))
}

func TestResultFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Result
	}{
		{"nil", nil, Result{Success: true}},
		{
			"validation",
			fmt.Errorf("wrapped: %w", NewValidationError("Invalid data", FieldError{Field: "name", Message: "Name is required"})),
			Result{Error: "Invalid data", Fields: []FieldError{{Field: "name", Message: "Name is required"}}},
		},
		{"not found", fmt.Errorf("failed to get event: %w", ErrEventNotFound), Result{Error: "Event not found"}},
		{"persistence", NewPersistenceError("Failed to register", errors.New("dial tcp")), Result{Error: "Failed to register"}},
		{"unknown", errors.New("dial tcp"), Result{Error: "Something went wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultFromError(tt.err, "Something went wrong"))
		})
	}
}

func TestValidationErrorIsInvalidInput(t *testing.T) {
	err := NewValidationError("Invalid data", FieldError{Field: "phone", Message: "Invalid phone number"})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.True(t, err.HasField("phone"))
	assert.False(t, err.HasField("email"))
	assert.Equal(t, "Invalid data (phone: Invalid phone number)", err.Error())
}

func TestNotificationText(t *testing.T) {
	event := &Event{ID: "e1", Title: "Hackathon"}
	team := NewTeamParticipant("e1", "Byte Club", []TeamMember{{Name: "A"}, {Name: "B"}}, time.Now())
	solo := NewIndividualParticipant("e1", TeamMember{Name: "Asha"}, time.Now())
	order := NewMerchOrder(&MerchOrderInput{Name: "Riya", TshirtDesign: DesignClassic, Size: "M"}, 449, time.Now())

	assert.Equal(t, `New team registration for "Hackathon": Byte Club (2 members)`, NewRegistrationNotification(event, team).Text())
	assert.Equal(t, `New registration for "Hackathon": Asha`, NewRegistrationNotification(event, solo).Text())
	assert.Equal(t, "New merch order from Riya: classic-design / M, 449", NewMerchOrderNotification(order).Text())
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
}

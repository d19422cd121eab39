package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListParticipants(t *testing.T) {
	team := entity.NewTeamParticipant(eventID, "Byte Club", []entity.TeamMember{
		{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"},
		{Name: "Ben", Email: "ben@example.com", Phone: "9876543211", RegNo: "24BYB0001"},
		{Name: "Chen", Email: "chen@example.com", Phone: "9876543212"},
	}, fixedNow)
	team.ID = "team-entry"
	solo := entity.NewIndividualParticipant(eventID, entity.TeamMember{Name: "Dev", Email: "dev@example.com", Phone: "9876543213"}, fixedNow)
	solo.ID = "solo-entry"

	tests := []struct {
		name         string
		participants []*entity.Participant
		want         []entity.ParticipantRow
	}{
		{
			name:         "no entries",
			participants: []*entity.Participant{},
			want:         []entity.ParticipantRow{},
		},
		{
			name:         "one team of three",
			participants: []*entity.Participant{team},
			want: []entity.ParticipantRow{
				{TeamName: "Byte Club", MemberName: "Asha", MemberEmail: "asha@example.com", MemberPhone: "9876543210", IsTeamRegistration: true, EntryID: "team-entry"},
				{TeamName: "Byte Club", MemberName: "Ben", MemberEmail: "ben@example.com", MemberPhone: "9876543211", MemberRegNo: "24BYB0001", IsTeamRegistration: true, EntryID: "team-entry"},
				{TeamName: "Byte Club", MemberName: "Chen", MemberEmail: "chen@example.com", MemberPhone: "9876543212", IsTeamRegistration: true, EntryID: "team-entry"},
			},
		},
		{
			name:         "one individual",
			participants: []*entity.Participant{solo},
			want: []entity.ParticipantRow{
				{MemberName: "Dev", MemberEmail: "dev@example.com", MemberPhone: "9876543213", EntryID: "solo-entry"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participants := new(mockParticipantRepo)
			participants.On("GetByEventID", mock.Anything, eventID).Return(tt.participants, nil)

			rows, err := NewParticipantService(new(mockEventRepo), participants).ListParticipants(context.Background(), eventID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestToCSV(t *testing.T) {
	rows := []entity.ParticipantRow{
		{TeamName: "Byte Club", MemberName: `Smith, "Bob"`, MemberEmail: "bob@example.com", MemberPhone: "9876543210", MemberRegNo: "24BYB0001"},
		{MemberName: "Dev", MemberEmail: "dev@example.com", MemberPhone: "9876543213"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewParticipantService(nil, nil).ToCSV(&buf, rows))

	want := "Team Name,Member Name,Registration Number,Email,Phone\n" +
		`Byte Club,"Smith, ""Bob""",24BYB0001,bob@example.com,9876543210` + "\n" +
		",Dev,,dev@example.com,9876543213\n"
	assert.Equal(t, want, buf.String())

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, `Smith, "Bob"`, records[1][1])
}

func TestExportCSV(t *testing.T) {
	events := new(mockEventRepo)
	participants := new(mockParticipantRepo)
	events.On("GetByID", mock.Anything, eventID).Return(&entity.Event{ID: eventID, Title: "Code Sprint: 2024!"}, nil)
	participants.On("GetByEventID", mock.Anything, eventID).Return([]*entity.Participant{
		entity.NewIndividualParticipant(eventID, entity.TeamMember{Name: "Dev", Email: "dev@example.com", Phone: "9876543213"}, fixedNow),
	}, nil)

	export, err := NewParticipantService(events, participants).ExportCSV(context.Background(), eventID)

	require.NoError(t, err)
	assert.Equal(t, "code-sprint-2024-participants.csv", export.Filename)
	assert.Equal(t, 1, export.Rows)
	assert.Contains(t, string(export.Data), "Dev")
}

func TestExportCSVMissingEvent(t *testing.T) {
	events := new(mockEventRepo)
	events.On("GetByID", mock.Anything, "missing").Return(nil, entity.ErrEventNotFound)

	_, err := NewParticipantService(events, new(mockParticipantRepo)).ExportCSV(context.Background(), "missing")

	assert.ErrorIs(t, err, entity.ErrEventNotFound)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Hackathon":          "hackathon",
		"  Code Sprint 2024 ": "code-sprint-2024",
		"Über Talk":          "ber-talk",
		"!!!":                "event",
	}
	for title, want := range tests {
		assert.Equal(t, want, Slug(title), title)
	}
}

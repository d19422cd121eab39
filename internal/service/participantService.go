package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ds124wfegd/club-events/internal/database"
	"github.com/ds124wfegd/club-events/internal/entity"
)

var csvHeader = []string{"Team Name", "Member Name", "Registration Number", "Email", "Phone"}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// CSVExport is a ready-to-download participant sheet.
type CSVExport struct {
	Filename string
	Data     []byte
	Rows     int
}

type participantService struct {
	eventRepo       database.EventRepository
	participantRepo database.ParticipantRepository
}

func NewParticipantService(
	eventRepo database.EventRepository,
	participantRepo database.ParticipantRepository,
) ParticipantService {
	return &participantService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
	}
}

// ListParticipants flattens every entry of the event into one row per
// person, in the order the entries were stored.
func (s *participantService) ListParticipants(ctx context.Context, eventID string) ([]entity.ParticipantRow, error) {
	participants, err := s.participantRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	rows := make([]entity.ParticipantRow, 0, len(participants))
	for _, p := range participants {
		rows = append(rows, p.Rows()...)
	}
	return rows, nil
}

func (s *participantService) ExportCSV(ctx context.Context, eventID string) (*CSVExport, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	rows, err := s.ListParticipants(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.ToCSV(&buf, rows); err != nil {
		return nil, err
	}

	return &CSVExport{
		Filename: Slug(event.Title) + "-participants.csv",
		Data:     buf.Bytes(),
		Rows:     len(rows),
	}, nil
}

// ToCSV writes the header and one record per row, in input order.
func (s *participantService) ToCSV(w io.Writer, rows []entity.ParticipantRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.TeamName, row.MemberName, row.MemberRegNo, row.MemberEmail, row.MemberPhone}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// Slug turns an event title into a file name stem.
func Slug(title string) string {
	slug := strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		return "event"
	}
	return slug
}

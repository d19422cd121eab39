package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ds124wfegd/club-events/internal/database"
	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/google/uuid"
)

type participantRepository struct {
	db *sql.DB
}

func NewParticipantRepository(db *sql.DB) database.ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, p *entity.Participant) error {
	query := `
		INSERT INTO participants (
			id, event_id, is_team_registration, team_size, name, email, phone,
			reg_no, team_name, team_members, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id,
		p.EventID,
		p.IsTeamRegistration,
		p.TeamSize,
		p.Name,
		p.Email,
		p.Phone,
		p.RegNo,
		p.TeamName,
		jsonColumn(&p.TeamMembers),
		p.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}

	p.ID = id
	return nil
}

// GetByEventID returns entries in insertion order, which seq records.
func (r *participantRepository) GetByEventID(ctx context.Context, eventID string) ([]*entity.Participant, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return []*entity.Participant{}, nil
	}

	query := `
		SELECT
			id, event_id, is_team_registration, team_size, name, email, phone,
			reg_no, team_name, team_members, submitted_at
		FROM participants
		WHERE event_id = $1
		ORDER BY seq ASC
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := make([]*entity.Participant, 0)
	for rows.Next() {
		var p entity.Participant
		err := rows.Scan(
			&p.ID,
			&p.EventID,
			&p.IsTeamRegistration,
			&p.TeamSize,
			&p.Name,
			&p.Email,
			&p.Phone,
			&p.RegNo,
			&p.TeamName,
			jsonColumn(&p.TeamMembers),
			&p.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

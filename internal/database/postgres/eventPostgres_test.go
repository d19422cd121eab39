package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEventID = "11111111-1111-1111-1111-111111111111"

var eventColumnNames = []string{
	"id", "title", "description", "event_date", "coordinators", "whatsapp_link",
	"is_team_based", "min_team_size", "max_team_size", "team_size", "created_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func addEventRow(rows *sqlmock.Rows, id, title string, date time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, title, "A long enough description.", date,
		[]byte(`[{"name":"Asha","phone":"9876543210"}]`), "https://chat.whatsapp.com/abc",
		false, int64(1), int64(1), nil, date.Add(-48*time.Hour),
	)
}

func TestEventRepositoryGetAllOrdersByDate(t *testing.T) {
	db, mock := newMockDB(t)
	early := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	late := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(eventColumnNames)
	addEventRow(rows, "22222222-2222-2222-2222-222222222222", "Workshop", early)
	addEventRow(rows, testEventID, "Hackathon", late)
	mock.ExpectQuery(`SELECT .+ FROM events ORDER BY event_date ASC$`).WillReturnRows(rows)

	events, err := NewEventRepository(db).GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, early, events[0].EventDate)
	assert.Equal(t, late, events[1].EventDate)
	assert.Equal(t, 1, events[0].MaxTeamSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryGetUpcoming(t *testing.T) {
	db, mock := newMockDB(t)
	from := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM events WHERE event_date >= \$1 ORDER BY event_date ASC$`).
		WithArgs(from).
		WillReturnRows(addEventRow(sqlmock.NewRows(eventColumnNames), testEventID, "Hackathon", date))

	events, err := NewEventRepository(db).GetUpcoming(context.Background(), from)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Hackathon", events[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryGetByID(t *testing.T) {
	t.Run("malformed id is not found without a query", func(t *testing.T) {
		db, mock := newMockDB(t)

		_, err := NewEventRepository(db).GetByID(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, entity.ErrEventNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
			WithArgs(testEventID).
			WillReturnError(sql.ErrNoRows)

		_, err := NewEventRepository(db).GetByID(context.Background(), testEventID)

		assert.ErrorIs(t, err, entity.ErrEventNotFound)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
			WithArgs(testEventID).
			WillReturnError(errors.New("connection reset"))

		_, err := NewEventRepository(db).GetByID(context.Background(), testEventID)

		require.Error(t, err)
		assert.NotErrorIs(t, err, entity.ErrEventNotFound)
	})
}

func TestEventRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO events`).
		WithArgs(sqlmock.AnyArg(), "Hackathon", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), true, 2, 4, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	event := &entity.Event{Title: "Hackathon", IsTeamBased: true, MinTeamSize: 2, MaxTeamSize: 4}
	require.NoError(t, NewEventRepository(db).Create(context.Background(), event))

	assert.Len(t, event.ID, 36)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs(testEventID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewEventRepository(db)

	require.NoError(t, repo.Delete(context.Background(), testEventID))
	require.NoError(t, repo.Delete(context.Background(), "not-a-uuid"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

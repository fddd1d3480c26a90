package postgres

import (
	"context"
	"errors"
	"time"

	"careertrack-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type sessionRepo struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new coaching-session repository
func NewSessionRepository(db *pgxpool.Pool) domain.SessionRepository {
	return &sessionRepo{db: db}
}

// ListTypes retrieves the active interview types
func (r *sessionRepo) ListTypes(ctx context.Context) ([]domain.InterviewType, error) {
	query := `
		SELECT id, name, duration, description, is_active, created_at, updated_at
		FROM interview_types
		WHERE is_active = true
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.InterviewType
	for rows.Next() {
		var t domain.InterviewType
		if err := rows.Scan(&t.ID, &t.Name, &t.Duration, &t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// GetTypeByID retrieves one interview type
func (r *sessionRepo) GetTypeByID(ctx context.Context, id string) (*domain.InterviewType, error) {
	query := `
		SELECT id, name, duration, description, is_active, created_at, updated_at
		FROM interview_types
		WHERE id = $1`

	var t domain.InterviewType
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Duration, &t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a new booked session
func (r *sessionRepo) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO interviews (id, client_id, application_id, coach_id, interview_type_id, start_time, end_time, status, meeting_url, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	now := time.Now()
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.Status == "" {
		session.Status = domain.SessionStatusScheduled
	}
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.ClientID,
		session.ApplicationID,
		session.CoachID,
		session.InterviewTypeID,
		session.StartTime,
		session.EndTime,
		session.Status,
		session.MeetingURL,
		session.Notes,
		session.CreatedAt,
		session.UpdatedAt,
	)
	return err
}

// ListByClient retrieves the client's sessions with the type name joined,
// soonest first
func (r *sessionRepo) ListByClient(ctx context.Context, clientID string) ([]domain.Session, error) {
	query := `
		SELECT
			i.id, i.client_id, i.application_id, i.coach_id, i.interview_type_id,
			i.start_time, i.end_time, i.status, i.meeting_url, i.notes,
			i.created_at, i.updated_at,
			it.name as type_name
		FROM interviews i
		LEFT JOIN interview_types it ON i.interview_type_id = it.id
		WHERE i.client_id = $1
		ORDER BY i.start_time ASC`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.ApplicationID, &s.CoachID, &s.InterviewTypeID,
			&s.StartTime, &s.EndTime, &s.Status, &s.MeetingURL, &s.Notes,
			&s.CreatedAt, &s.UpdatedAt,
			&s.TypeName,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetByID retrieves a session by id
func (r *sessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, client_id, application_id, coach_id, interview_type_id,
		       start_time, end_time, status, meeting_url, notes, created_at, updated_at
		FROM interviews
		WHERE id = $1`

	var s domain.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ClientID, &s.ApplicationID, &s.CoachID, &s.InterviewTypeID,
		&s.StartTime, &s.EndTime, &s.Status, &s.MeetingURL, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// HasOverlap checks for a scheduled session of the same client intersecting
// the given window
func (r *sessionRepo) HasOverlap(ctx context.Context, clientID string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM interviews
			WHERE client_id = $1 AND status = $2
			  AND start_time < $4 AND end_time > $3
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query, clientID, domain.SessionStatusScheduled, start, end).Scan(&exists)
	return exists, err
}

// UpdateStatus updates the status of a session and sets updated_at
func (r *sessionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE interviews SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

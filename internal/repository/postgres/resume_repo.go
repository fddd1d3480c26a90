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

type resumeRepo struct {
	db *pgxpool.Pool
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

// Create inserts a new resume version record
func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (id, client_id, version_name, file_url, ai_feedback_requested, ai_feedback_status, ai_feedback_result, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}
	if resume.AIFeedbackStatus == "" {
		resume.AIFeedbackStatus = domain.AIFeedbackStatusPending
	}
	resume.CreatedAt = now
	resume.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		resume.ID,
		resume.ClientID,
		resume.VersionName,
		resume.FileURL,
		resume.AIFeedbackRequested,
		resume.AIFeedbackStatus,
		resume.AIFeedbackResult,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// ListByClient retrieves all resume versions for a client, newest first
func (r *resumeRepo) ListByClient(ctx context.Context, clientID string) ([]domain.Resume, error) {
	query := `
		SELECT id, client_id, version_name, file_url, ai_feedback_requested, ai_feedback_status, ai_feedback_result, created_at, updated_at
		FROM resumes
		WHERE client_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(
			&resume.ID, &resume.ClientID, &resume.VersionName, &resume.FileURL,
			&resume.AIFeedbackRequested, &resume.AIFeedbackStatus, &resume.AIFeedbackResult,
			&resume.CreatedAt, &resume.UpdatedAt,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// GetByID retrieves a resume version by id
func (r *resumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	query := `
		SELECT id, client_id, version_name, file_url, ai_feedback_requested, ai_feedback_status, ai_feedback_result, created_at, updated_at
		FROM resumes
		WHERE id = $1`

	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resume.ID, &resume.ClientID, &resume.VersionName, &resume.FileURL,
		&resume.AIFeedbackRequested, &resume.AIFeedbackStatus, &resume.AIFeedbackResult,
		&resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &resume, nil
}

// MarkFeedbackRequested flags the version for AI feedback and resets the
// status to pending
func (r *resumeRepo) MarkFeedbackRequested(ctx context.Context, id string) error {
	query := `
		UPDATE resumes
		SET ai_feedback_requested = true, ai_feedback_status = $2, updated_at = $3
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, domain.AIFeedbackStatusPending, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

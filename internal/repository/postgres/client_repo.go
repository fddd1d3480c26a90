package postgres

import (
	"context"
	"errors"
	"time"

	"careertrack-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clientRepo struct {
	db *pgxpool.Pool
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *pgxpool.Pool) domain.ClientRepository {
	return &clientRepo{db: db}
}

const clientColumns = `
	id, clerk_user_id, email, first_name, last_name, phone, timezone,
	profile_status, target_job_title, experience_level,
	onboarding_completed, onboarding_completed_at, created_at, updated_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID, &c.ClerkUserID, &c.Email, &c.FirstName, &c.LastName, &c.Phone, &c.Timezone,
		&c.ProfileStatus, &c.TargetJobTitle, &c.ExperienceLevel,
		&c.OnboardingCompleted, &c.OnboardingCompletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByClerkUserID retrieves the client that belongs to a Clerk identity
func (r *clientRepo) GetByClerkUserID(ctx context.Context, clerkUserID string) (*domain.Client, error) {
	query := `SELECT` + clientColumns + ` FROM clients WHERE clerk_user_id = $1`
	return scanClient(r.db.QueryRow(ctx, query, clerkUserID))
}

// Create inserts a new client row. The clerk_user_id column carries a unique
// index; a conflict there means a concurrent first call won the race, which
// is surfaced as domain.ErrDuplicate so the caller can re-read.
func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (
			id, clerk_user_id, email, first_name, last_name, timezone,
			profile_status, target_job_title, experience_level,
			onboarding_completed, onboarding_completed_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	now := time.Now()
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if client.Timezone == "" {
		client.Timezone = "UTC"
	}
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		client.ID,
		client.ClerkUserID,
		client.Email,
		client.FirstName,
		client.LastName,
		client.Timezone,
		client.ProfileStatus,
		client.TargetJobTitle,
		client.ExperienceLevel,
		client.OnboardingCompleted,
		client.OnboardingCompletedAt,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// CompleteOnboarding applies the onboarding fields in a single update
func (r *clientRepo) CompleteOnboarding(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET target_job_title = $2, experience_level = $3,
		    onboarding_completed = $4, onboarding_completed_at = $5,
		    profile_status = $6, updated_at = $7
		WHERE id = $1`

	client.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		client.ID,
		client.TargetJobTitle,
		client.ExperienceLevel,
		client.OnboardingCompleted,
		client.OnboardingCompletedAt,
		client.ProfileStatus,
		client.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"time"

	"careertrack-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. Absent optional fields are stored as
// NULL; applied_date is stamped with the current time when the caller left
// it empty.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, client_id, company_name, job_title, job_url, status, applied_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now()
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}
	if app.AppliedDate == "" {
		app.AppliedDate = now.Format(time.RFC3339)
	}
	app.CreatedAt = now
	app.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		app.ID,
		app.ClientID,
		app.CompanyName,
		app.JobTitle,
		app.JobURL,
		app.Status,
		app.AppliedDate,
		app.Notes,
		app.CreatedAt,
		app.UpdatedAt,
	)
	return err
}

// ListByClient retrieves all applications for a client, newest first.
// The status filter is applied in the query, not in memory.
func (r *applicationRepo) ListByClient(ctx context.Context, clientID, status string) ([]domain.Application, error) {
	query := `
		SELECT id, client_id, company_name, job_title, job_url, status, applied_date, notes, created_at, updated_at
		FROM applications
		WHERE client_id = $1`

	args := []interface{}{clientID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.ClientID, &app.CompanyName, &app.JobTitle, &app.JobURL,
			&app.Status, &app.AppliedDate, &app.Notes, &app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

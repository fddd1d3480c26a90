package postgres

import (
	"context"

	"careertrack-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type feedbackRepo struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) domain.FeedbackRepository {
	return &feedbackRepo{db: db}
}

// ListByClient retrieves the client's feedback entries newest first,
// optionally narrowed to one feedback type at the query level
func (r *feedbackRepo) ListByClient(ctx context.Context, clientID, feedbackType string) ([]domain.Feedback, error) {
	query := `
		SELECT id, client_id, feedback_type, reference_id, provider, coach_id, content, created_at
		FROM feedback
		WHERE client_id = $1`

	args := []interface{}{clientID}
	if feedbackType != "" {
		query += ` AND feedback_type = $2`
		args = append(args, feedbackType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(
			&f.ID, &f.ClientID, &f.FeedbackType, &f.ReferenceID,
			&f.Provider, &f.CoachID, &f.Content, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, f)
	}
	return entries, rows.Err()
}

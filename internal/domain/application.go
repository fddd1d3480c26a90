package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied      = "applied"
	ApplicationStatusInterviewing = "interviewing"
	ApplicationStatusOffer        = "offer"
	ApplicationStatusRejected     = "rejected"
	ApplicationStatusAccepted     = "accepted"
)

// ApplicationStatuses lists the closed five-value lifecycle enum in
// display order.
func ApplicationStatuses() []string {
	return []string{
		ApplicationStatusApplied,
		ApplicationStatusInterviewing,
		ApplicationStatusOffer,
		ApplicationStatusRejected,
		ApplicationStatusAccepted,
	}
}

// IsValidApplicationStatus reports whether s is one of the five lifecycle
// values. Anything else is a validation error, never silently coerced.
func IsValidApplicationStatus(s string) bool {
	for _, valid := range ApplicationStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Application is one tracked job application belonging to exactly one Client.
type Application struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	CompanyName string    `json:"company_name"`
	JobTitle    string    `json:"job_title"`
	JobURL      *string   `json:"job_url"`
	Status      string    `json:"status"`
	AppliedDate string    `json:"applied_date"` // free-form; RFC3339 now when omitted
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateApplicationRequest is the validated application-create payload.
// Mirrors the dashboard form: an empty job_url means "absent".
type CreateApplicationRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	JobTitle    string `json:"job_title" validate:"required,min=1"`
	JobURL      string `json:"job_url" validate:"omitempty,url"`
	Status      string `json:"status" validate:"omitempty,oneof=applied interviewing offer rejected accepted"`
	AppliedDate string `json:"applied_date"`
	Notes       string `json:"notes"`
}

// ApplicationList is the list response: the rows plus stats derived from
// exactly those rows. With a status filter upstream, stats reflect the
// filtered set, not the client's full history.
type ApplicationList struct {
	Data  []Application `json:"data"`
	Stats Stats         `json:"stats"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	// ListByClient returns the client's applications newest first. A
	// non-empty status narrows the query at the store, not in memory.
	ListByClient(ctx context.Context, clientID, status string) ([]Application, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	Create(ctx context.Context, identity Identity, req *CreateApplicationRequest) (*Application, error)
	List(ctx context.Context, identity Identity, statusFilter string) (*ApplicationList, error)
}

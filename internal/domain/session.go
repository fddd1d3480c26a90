package domain

import (
	"context"
	"time"
)

// Session status constants
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// InterviewType is a bookable coaching-session format (mock interview,
// resume review, ...). Managed out of band; this core only reads them.
type InterviewType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Duration    int       `json:"duration"` // minutes
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Session is a booked coaching session. Coach assignment and the meeting
// link are filled in by the coaching side, not by this API.
type Session struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	ApplicationID   *string   `json:"application_id"`
	CoachID         *string   `json:"coach_id"`
	InterviewTypeID *string   `json:"interview_type_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"` // scheduled | completed | cancelled
	MeetingURL      *string   `json:"meeting_url"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data for list responses
	TypeName *string `json:"type_name,omitempty"`
}

// BookSessionRequest is the validated booking payload.
type BookSessionRequest struct {
	InterviewTypeID string    `json:"interview_type_id" validate:"required,uuid"`
	ApplicationID   string    `json:"application_id" validate:"omitempty,uuid"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	EndTime         time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Notes           string    `json:"notes"`
}

// SessionRepository defines data access methods for coaching sessions
type SessionRepository interface {
	ListTypes(ctx context.Context) ([]InterviewType, error)
	GetTypeByID(ctx context.Context, id string) (*InterviewType, error)
	Create(ctx context.Context, session *Session) error
	ListByClient(ctx context.Context, clientID string) ([]Session, error)
	GetByID(ctx context.Context, id string) (*Session, error)
	// HasOverlap reports whether the client already has a scheduled session
	// intersecting [start, end).
	HasOverlap(ctx context.Context, clientID string, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// SessionUsecase defines business logic for coaching sessions
type SessionUsecase interface {
	ListTypes(ctx context.Context) ([]InterviewType, error)
	Book(ctx context.Context, identity Identity, req *BookSessionRequest) (*Session, error)
	List(ctx context.Context, identity Identity) ([]Session, error)
	Cancel(ctx context.Context, identity Identity, sessionID string) error
}

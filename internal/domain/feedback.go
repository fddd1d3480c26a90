package domain

import (
	"context"
	"time"
)

// Feedback type constants
const (
	FeedbackTypeResume      = "resume"
	FeedbackTypeInterview   = "interview"
	FeedbackTypeApplication = "application"
)

// Feedback provider constants
const (
	FeedbackProviderAI    = "ai"
	FeedbackProviderCoach = "coach"
)

// IsValidFeedbackType reports whether t names a feedback category.
func IsValidFeedbackType(t string) bool {
	return t == FeedbackTypeResume || t == FeedbackTypeInterview || t == FeedbackTypeApplication
}

// Feedback is a coach- or AI-authored note attached to one of the client's
// artifacts. Written by the coaching side; read-only here.
type Feedback struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id"`
	FeedbackType string    `json:"feedback_type"` // resume | interview | application
	ReferenceID  *string   `json:"reference_id"`
	Provider     string    `json:"provider"` // ai | coach
	CoachID      *string   `json:"coach_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

// FeedbackRepository defines data access methods for feedback entries
type FeedbackRepository interface {
	// ListByClient returns the client's feedback newest first; a non-empty
	// feedbackType narrows the query at the store.
	ListByClient(ctx context.Context, clientID, feedbackType string) ([]Feedback, error)
}

// FeedbackUsecase defines business logic for the feedback feed
type FeedbackUsecase interface {
	List(ctx context.Context, identity Identity, feedbackType string) ([]Feedback, error)
}

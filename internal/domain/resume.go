package domain

import (
	"context"
	"encoding/json"
	"time"
)

// AI feedback status constants
const (
	AIFeedbackStatusPending    = "pending"
	AIFeedbackStatusProcessing = "processing"
	AIFeedbackStatusComplete   = "complete"
)

// Resume is one uploaded resume version. The file itself lives in object
// storage; this record only keeps the object URL and feedback state.
type Resume struct {
	ID                  string          `json:"id"`
	ClientID            string          `json:"client_id"`
	VersionName         string          `json:"version_name"`
	FileURL             string          `json:"file_url"`
	AIFeedbackRequested bool            `json:"ai_feedback_requested"`
	AIFeedbackStatus    string          `json:"ai_feedback_status"` // pending | processing | complete
	AIFeedbackResult    json.RawMessage `json:"ai_feedback_result"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CreateResumeRequest registers a new resume version before upload.
type CreateResumeRequest struct {
	VersionName string `json:"version_name" validate:"required,min=1"`
	ContentType string `json:"content_type" validate:"omitempty"`
}

// ResumeUpload pairs the created record with the presigned URL the client
// PUTs the file to. The URL is short-lived and never stored.
type ResumeUpload struct {
	Resume    *Resume `json:"resume"`
	UploadURL string  `json:"upload_url"`
}

// ResumeRepository defines data access methods for resume versions
type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	ListByClient(ctx context.Context, clientID string) ([]Resume, error)
	GetByID(ctx context.Context, id string) (*Resume, error)
	MarkFeedbackRequested(ctx context.Context, id string) error
}

// ResumeUsecase defines business logic for resume versions
type ResumeUsecase interface {
	Register(ctx context.Context, identity Identity, req *CreateResumeRequest) (*ResumeUpload, error)
	List(ctx context.Context, identity Identity) ([]Resume, error)
	// RequestAIFeedback flips the record to pending. Feedback generation is
	// an external collaborator; nothing here calls a model.
	RequestAIFeedback(ctx context.Context, identity Identity, resumeID string) (*Resume, error)
}

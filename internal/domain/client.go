package domain

import (
	"context"
	"time"
)

// Profile status constants
const (
	ProfileStatusIncomplete = "incomplete"
	ProfileStatusActive     = "active"
	ProfileStatusPaused     = "paused"
)

// Identity is the verified external identity extracted from the session
// token. Verification already happened in the auth middleware; nothing
// downstream re-checks signatures.
type Identity struct {
	UserID    string // Clerk user id (sub claim)
	Email     string
	FirstName string
	LastName  string
}

// Client is the internal profile record for an authenticated job seeker.
// One per identity; created lazily on the first /clients/init call.
type Client struct {
	ID                    string     `json:"id"`
	ClerkUserID           string     `json:"clerk_user_id"`
	Email                 string     `json:"email"`
	FirstName             *string    `json:"first_name"`
	LastName              *string    `json:"last_name"`
	Phone                 *string    `json:"phone,omitempty"`
	Timezone              string     `json:"timezone"`
	ProfileStatus         string     `json:"profile_status"` // incomplete | active | paused
	TargetJobTitle        *string    `json:"target_job_title"`
	ExperienceLevel       *string    `json:"experience_level"`
	OnboardingCompleted   bool       `json:"onboarding_completed"`
	OnboardingCompletedAt *time.Time `json:"onboarding_completed_at"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// FullName joins first and last name, falling back to the email address.
func (c *Client) FullName() string {
	name := ""
	if c.FirstName != nil {
		name = *c.FirstName
	}
	if c.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *c.LastName
	}
	if name == "" {
		return c.Email
	}
	return name
}

// InitClientRequest carries the optional onboarding fields of the
// create-or-update client call
type InitClientRequest struct {
	TargetJobTitle  string `json:"targetJobTitle"`
	ExperienceLevel string `json:"experienceLevel"`
}

// ClientRepository defines data access methods for clients
type ClientRepository interface {
	GetByClerkUserID(ctx context.Context, clerkUserID string) (*Client, error)
	// Create returns ErrDuplicate when another request won the insert race;
	// callers should re-read by clerk_user_id.
	Create(ctx context.Context, client *Client) error
	CompleteOnboarding(ctx context.Context, client *Client) error
}

// ClientUsecase defines business logic for client identity resolution
type ClientUsecase interface {
	// InitClient resolves the identity to a Client, creating one if absent.
	// The boolean reports whether a new row was created.
	InitClient(ctx context.Context, identity Identity, req *InitClientRequest) (*Client, bool, error)
	GetByIdentity(ctx context.Context, identity Identity) (*Client, error)
}

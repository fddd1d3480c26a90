package domain

import "context"

// CompleteOnboardingRequest is what the multi-step wizard submits at the end.
// Job fields are optional: they seed a first application when both are set.
type CompleteOnboardingRequest struct {
	TargetJobTitle  string `json:"targetJobTitle" validate:"required,min=1"`
	ExperienceLevel string `json:"experienceLevel"`
	CompanyName     string `json:"company_name"`
	JobTitle        string `json:"job_title"`
	JobDescription  string `json:"jobDescription"`
}

// OnboardingResult reports what the orchestrator did. SeedApplication is nil
// when no job fields were supplied or when the seed insert failed; the
// second case does not fail onboarding as a whole.
type OnboardingResult struct {
	Client          *Client      `json:"client"`
	SeedApplication *Application `json:"seed_application,omitempty"`
}

// OnboardingUsecase sequences client initialization and the optional
// first-application seed.
type OnboardingUsecase interface {
	CompleteOnboarding(ctx context.Context, identity Identity, req *CompleteOnboardingRequest) (*OnboardingResult, error)
}

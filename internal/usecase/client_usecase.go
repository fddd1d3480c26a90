package usecase

import (
	"context"
	"errors"
	"time"

	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"
)

type clientUsecase struct {
	clientRepo domain.ClientRepository
}

// NewClientUsecase creates a new client usecase
func NewClientUsecase(clientRepo domain.ClientRepository) domain.ClientUsecase {
	return &clientUsecase{clientRepo: clientRepo}
}

// InitClient resolves the verified identity to its Client row, creating one
// on first contact. Idempotent: calling it again without onboarding fields
// returns the same row untouched; calling it with onboarding fields applies
// them and marks onboarding complete.
func (uc *clientUsecase) InitClient(ctx context.Context, identity domain.Identity, req *domain.InitClientRequest) (*domain.Client, bool, error) {
	if req == nil {
		req = &domain.InitClientRequest{}
	}

	existing, err := uc.clientRepo.GetByClerkUserID(ctx, identity.UserID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, apperror.Internal(err)
	}

	if existing != nil {
		// Update path: merge onboarding fields when supplied, otherwise
		// return the row as-is.
		if req.TargetJobTitle == "" && req.ExperienceLevel == "" {
			return existing, false, nil
		}

		now := time.Now()
		if req.TargetJobTitle != "" {
			existing.TargetJobTitle = &req.TargetJobTitle
		}
		if req.ExperienceLevel != "" {
			existing.ExperienceLevel = &req.ExperienceLevel
		}
		existing.OnboardingCompleted = true
		existing.OnboardingCompletedAt = &now
		existing.ProfileStatus = domain.ProfileStatusActive

		if err := uc.clientRepo.CompleteOnboarding(ctx, existing); err != nil {
			return nil, false, apperror.Internal(err)
		}
		return existing, false, nil
	}

	// Creation path: a client with a target job title skipped straight
	// through onboarding, so the profile starts active.
	client := &domain.Client{
		ClerkUserID:   identity.UserID,
		Email:         identity.Email,
		FirstName:     strPtr(identity.FirstName),
		LastName:      strPtr(identity.LastName),
		ProfileStatus: domain.ProfileStatusIncomplete,
	}
	if req.TargetJobTitle != "" {
		now := time.Now()
		client.TargetJobTitle = &req.TargetJobTitle
		client.ProfileStatus = domain.ProfileStatusActive
		client.OnboardingCompleted = true
		client.OnboardingCompletedAt = &now
	}
	if req.ExperienceLevel != "" {
		client.ExperienceLevel = &req.ExperienceLevel
	}

	err = uc.clientRepo.Create(ctx, client)
	if err != nil {
		// Two near-simultaneous first calls can both miss the lookup; the
		// unique index on clerk_user_id decides the winner and the loser
		// re-reads.
		if errors.Is(err, domain.ErrDuplicate) {
			winner, rerr := uc.clientRepo.GetByClerkUserID(ctx, identity.UserID)
			if rerr != nil {
				return nil, false, apperror.Internal(rerr)
			}
			return winner, false, nil
		}
		return nil, false, apperror.Internal(err)
	}

	return client, true, nil
}

// GetByIdentity returns the Client for the current identity
func (uc *clientUsecase) GetByIdentity(ctx context.Context, identity domain.Identity) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByClerkUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Client not found")
		}
		return nil, apperror.Internal(err)
	}
	return client, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

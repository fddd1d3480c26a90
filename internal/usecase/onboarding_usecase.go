package usecase

import (
	"context"

	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"
	"careertrack-backend/pkg/logger"
	"careertrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type onboardingUsecase struct {
	clientUC      domain.ClientUsecase
	applicationUC domain.ApplicationUsecase
	validate      *validator.Validate
}

// NewOnboardingUsecase creates a new onboarding orchestrator
func NewOnboardingUsecase(
	clientUC domain.ClientUsecase,
	applicationUC domain.ApplicationUsecase,
	validate *validator.Validate,
) domain.OnboardingUsecase {
	return &onboardingUsecase{
		clientUC:      clientUC,
		applicationUC: applicationUC,
		validate:      validate,
	}
}

// CompleteOnboarding sequences two independent calls: initialize the client
// with the wizard's onboarding fields, then seed a first application when
// the wizard collected a company and job title. The two steps are not
// transactional: a failed seed leaves the client in place and onboarding
// still succeeds. Known gap, kept until product decides otherwise.
func (uc *onboardingUsecase) CompleteOnboarding(ctx context.Context, identity domain.Identity, req *domain.CompleteOnboardingRequest) (*domain.OnboardingResult, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	// Step 1: create-or-update the client with onboarding fields
	client, _, err := uc.clientUC.InitClient(ctx, identity, &domain.InitClientRequest{
		TargetJobTitle:  req.TargetJobTitle,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		return nil, err
	}

	result := &domain.OnboardingResult{Client: client}

	// Step 2: optional first application
	if req.CompanyName != "" && req.JobTitle != "" {
		seed, err := uc.applicationUC.Create(ctx, identity, &domain.CreateApplicationRequest{
			CompanyName: req.CompanyName,
			JobTitle:    req.JobTitle,
			Status:      domain.ApplicationStatusApplied,
			Notes:       req.JobDescription,
		})
		if err != nil {
			logger.Log.Warn("Onboarding seed application failed, client kept without it",
				"client_id", client.ID, "error", err)
		} else {
			result.SeedApplication = seed
		}
	}

	return result, nil
}

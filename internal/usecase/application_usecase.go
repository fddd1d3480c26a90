package usecase

import (
	"context"
	"errors"

	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"
	"careertrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	clientRepo      domain.ClientRepository
	validate        *validator.Validate
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	clientRepo domain.ClientRepository,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		clientRepo:      clientRepo,
		validate:        validate,
	}
}

// Create validates and persists one application for the identity's client.
// Nothing is persisted when validation fails.
func (uc *applicationUsecase) Create(ctx context.Context, identity domain.Identity, req *domain.CreateApplicationRequest) (*domain.Application, error) {
	// 1. Validate payload; all field errors are reported together
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	// 2. Resolve the client; applications are never created without one
	client, err := uc.resolveClient(ctx, identity)
	if err != nil {
		return nil, err
	}

	// 3. Normalize: empty optionals become NULL, status defaults to applied
	app := &domain.Application{
		ClientID:    client.ID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		JobURL:      strPtr(req.JobURL),
		Status:      req.Status,
		AppliedDate: req.AppliedDate,
		Notes:       strPtr(req.Notes),
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// List returns the client's applications plus stats computed over exactly
// the returned rows. A status filter therefore also filters the stats; the
// dashboard depends on that.
func (uc *applicationUsecase) List(ctx context.Context, identity domain.Identity, statusFilter string) (*domain.ApplicationList, error) {
	if statusFilter != "" && !domain.IsValidApplicationStatus(statusFilter) {
		return nil, apperror.BadRequest("Invalid status filter. Must be one of: applied, interviewing, offer, rejected, accepted")
	}

	client, err := uc.resolveClient(ctx, identity)
	if err != nil {
		return nil, err
	}

	apps, err := uc.applicationRepo.ListByClient(ctx, client.ID, statusFilter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	return &domain.ApplicationList{
		Data:  apps,
		Stats: domain.ComputeStats(apps),
	}, nil
}

func (uc *applicationUsecase) resolveClient(ctx context.Context, identity domain.Identity) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByClerkUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Client not found")
		}
		return nil, apperror.Internal(err)
	}
	return client, nil
}

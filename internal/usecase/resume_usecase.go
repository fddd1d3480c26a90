package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"
	"careertrack-backend/pkg/storage"
	"careertrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	clientRepo domain.ClientRepository
	store      *storage.ResumeStore
	validate   *validator.Validate
}

// NewResumeUsecase creates a new resume usecase. store may be nil when no
// bucket is configured; registration is then unavailable.
func NewResumeUsecase(
	resumeRepo domain.ResumeRepository,
	clientRepo domain.ClientRepository,
	store *storage.ResumeStore,
	validate *validator.Validate,
) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo: resumeRepo,
		clientRepo: clientRepo,
		store:      store,
		validate:   validate,
	}
}

// Register records a new resume version and hands back a presigned upload
// URL. The file bytes go straight from the browser to the bucket.
func (uc *resumeUsecase) Register(ctx context.Context, identity domain.Identity, req *domain.CreateResumeRequest) (*domain.ResumeUpload, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	client, err := uc.resolveClient(ctx, identity)
	if err != nil {
		return nil, err
	}

	if uc.store == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "Resume uploads are not configured", nil)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}

	resume := &domain.Resume{
		ID:               uuid.NewString(),
		ClientID:         client.ID,
		VersionName:      req.VersionName,
		AIFeedbackStatus: domain.AIFeedbackStatusPending,
	}
	key := fmt.Sprintf("resumes/%s/%s", client.ID, resume.ID)
	resume.FileURL = uc.store.ObjectURL(key)

	uploadURL, err := uc.store.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := uc.resumeRepo.Create(ctx, resume); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ResumeUpload{Resume: resume, UploadURL: uploadURL}, nil
}

// List returns the client's resume versions, newest first
func (uc *resumeUsecase) List(ctx context.Context, identity domain.Identity) ([]domain.Resume, error) {
	client, err := uc.resolveClient(ctx, identity)
	if err != nil {
		return nil, err
	}

	resumes, err := uc.resumeRepo.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if resumes == nil {
		resumes = []domain.Resume{}
	}
	return resumes, nil
}

// RequestAIFeedback flags a version for feedback. Generation happens in an
// external pipeline; the status only moves to pending here.
func (uc *resumeUsecase) RequestAIFeedback(ctx context.Context, identity domain.Identity, resumeID string) (*domain.Resume, error) {
	client, err := uc.resolveClient(ctx, identity)
	if err != nil {
		return nil, err
	}

	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	// Foreign resumes look exactly like missing ones
	if resume.ClientID != client.ID {
		return nil, apperror.NotFound("Resume not found")
	}

	if err := uc.resumeRepo.MarkFeedbackRequested(ctx, resume.ID); err != nil {
		return nil, apperror.Internal(err)
	}

	resume.AIFeedbackRequested = true
	resume.AIFeedbackStatus = domain.AIFeedbackStatusPending
	return resume, nil
}

func (uc *resumeUsecase) resolveClient(ctx context.Context, identity domain.Identity) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByClerkUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Client not found")
		}
		return nil, apperror.Internal(err)
	}
	return client, nil
}

package usecase

import (
	"context"
	"errors"

	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"
)

type feedbackUsecase struct {
	feedbackRepo domain.FeedbackRepository
	clientRepo   domain.ClientRepository
}

// NewFeedbackUsecase creates a new feedback usecase
func NewFeedbackUsecase(feedbackRepo domain.FeedbackRepository, clientRepo domain.ClientRepository) domain.FeedbackUsecase {
	return &feedbackUsecase{
		feedbackRepo: feedbackRepo,
		clientRepo:   clientRepo,
	}
}

// List returns the client's feedback feed, optionally narrowed by type
func (uc *feedbackUsecase) List(ctx context.Context, identity domain.Identity, feedbackType string) ([]domain.Feedback, error) {
	if feedbackType != "" && !domain.IsValidFeedbackType(feedbackType) {
		return nil, apperror.BadRequest("Invalid feedback type. Must be one of: resume, interview, application")
	}

	client, err := uc.clientRepo.GetByClerkUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Client not found")
		}
		return nil, apperror.Internal(err)
	}

	entries, err := uc.feedbackRepo.ListByClient(ctx, client.ID, feedbackType)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if entries == nil {
		entries = []domain.Feedback{}
	}
	return entries, nil
}

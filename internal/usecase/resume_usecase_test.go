package usecase_test

import (
	"context"
	"errors"
	"testing"

	"careertrack-backend/internal/domain"
	"careertrack-backend/internal/usecase"
	"careertrack-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) ListByClient(ctx context.Context, clientID string) ([]domain.Resume, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) MarkFeedbackRequested(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) ListByClient(ctx context.Context, clientID, feedbackType string) ([]domain.Feedback, error) {
	args := m.Called(ctx, clientID, feedbackType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

func TestResumeRegister(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should require a version name", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewResumeUsecase(mockRepo, mockClientRepo, nil, validate)

		_, err := uc.Register(ctx, testIdentity, &domain.CreateResumeRequest{})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "version_name", appErr.Fields[0].Field)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should report 503 when no bucket is configured", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewResumeUsecase(mockRepo, mockClientRepo, nil, validate)

		mockClientRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(existingClient(), nil)

		_, err := uc.Register(ctx, testIdentity, &domain.CreateResumeRequest{VersionName: "v1"})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 503, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestResumeAIFeedbackRequest(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should hide foreign resumes behind a 404", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewResumeUsecase(mockRepo, mockClientRepo, nil, validate)

		mockClientRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(existingClient(), nil)
		mockRepo.On("GetByID", ctx, "r1").Return(&domain.Resume{
			ID:       "r1",
			ClientID: "someone-else",
		}, nil)

		_, err := uc.RequestAIFeedback(ctx, testIdentity, "r1")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		mockRepo.AssertNotCalled(t, "MarkFeedbackRequested", mock.Anything, mock.Anything)
	})

	t.Run("Should flag the resume pending without generating anything", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewResumeUsecase(mockRepo, mockClientRepo, nil, validate)

		client := existingClient()
		mockClientRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(client, nil)
		mockRepo.On("GetByID", ctx, "r1").Return(&domain.Resume{
			ID:       "r1",
			ClientID: client.ID,
		}, nil)
		mockRepo.On("MarkFeedbackRequested", ctx, "r1").Return(nil)

		resume, err := uc.RequestAIFeedback(ctx, testIdentity, "r1")
		assert.NoError(t, err)
		assert.True(t, resume.AIFeedbackRequested)
		assert.Equal(t, domain.AIFeedbackStatusPending, resume.AIFeedbackStatus)
		mockRepo.AssertExpectations(t)
	})
}

func TestFeedbackList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown type filter", func(t *testing.T) {
		mockRepo := new(MockFeedbackRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewFeedbackUsecase(mockRepo, mockClientRepo)

		_, err := uc.List(ctx, testIdentity, "career")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "ListByClient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should pass the type filter through to the store", func(t *testing.T) {
		mockRepo := new(MockFeedbackRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewFeedbackUsecase(mockRepo, mockClientRepo)

		client := existingClient()
		mockClientRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(client, nil)
		mockRepo.On("ListByClient", ctx, client.ID, domain.FeedbackTypeResume).Return([]domain.Feedback{
			{ID: "f1", FeedbackType: domain.FeedbackTypeResume},
		}, nil)

		entries, err := uc.List(ctx, testIdentity, domain.FeedbackTypeResume)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		mockRepo.AssertExpectations(t)
	})
}

package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"careertrack-backend/internal/domain"
	"careertrack-backend/internal/usecase"
	"careertrack-backend/pkg/apperror"
	"careertrack-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

var testIdentity = domain.Identity{
	UserID:    "user_2abc",
	Email:     "jane@example.com",
	FirstName: "Jane",
	LastName:  "Doe",
}

// Mock Repositories
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) GetByClerkUserID(ctx context.Context, clerkUserID string) (*domain.Client, error) {
	args := m.Called(ctx, clerkUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepo) CompleteOnboarding(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) ListByClient(ctx context.Context, clientID, status string) ([]domain.Application, error) {
	args := m.Called(ctx, clientID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

// Mock Usecases (for the onboarding orchestrator)
type MockClientUC struct {
	mock.Mock
}

func (m *MockClientUC) InitClient(ctx context.Context, identity domain.Identity, req *domain.InitClientRequest) (*domain.Client, bool, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Client), args.Bool(1), args.Error(2)
}

func (m *MockClientUC) GetByIdentity(ctx context.Context, identity domain.Identity) (*domain.Client, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

type MockApplicationUC struct {
	mock.Mock
}

func (m *MockApplicationUC) Create(ctx context.Context, identity domain.Identity, req *domain.CreateApplicationRequest) (*domain.Application, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUC) List(ctx context.Context, identity domain.Identity, statusFilter string) (*domain.ApplicationList, error) {
	args := m.Called(ctx, identity, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationList), args.Error(1)
}

func existingClient() *domain.Client {
	first, last := "Jane", "Doe"
	return &domain.Client{
		ID:            "c1d2e3f4-0000-0000-0000-000000000001",
		ClerkUserID:   testIdentity.UserID,
		Email:         testIdentity.Email,
		FirstName:     &first,
		LastName:      &last,
		Timezone:      "UTC",
		ProfileStatus: domain.ProfileStatusIncomplete,
	}
}

func TestInitClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create an incomplete profile on first contact", func(t *testing.T) {
		mockRepo := new(MockClientRepo)
		uc := usecase.NewClientUsecase(mockRepo)

		mockRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Client")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Client)
			assert.Equal(t, testIdentity.UserID, c.ClerkUserID)
			assert.Equal(t, domain.ProfileStatusIncomplete, c.ProfileStatus)
			assert.False(t, c.OnboardingCompleted)
		})

		client, created, err := uc.InitClient(ctx, testIdentity, nil)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, testIdentity.Email, client.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should be idempotent when the client already exists", func(t *testing.T) {
		mockRepo := new(MockClientRepo)
		uc := usecase.NewClientUsecase(mockRepo)

		mockRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(existingClient(), nil)

		client, created, err := uc.InitClient(ctx, testIdentity, nil)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "c1d2e3f4-0000-0000-0000-000000000001", client.ID)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "CompleteOnboarding", mock.Anything, mock.Anything)
	})

	t.Run("Should start active when created with a target job title", func(t *testing.T) {
		mockRepo := new(MockClientRepo)
		uc := usecase.NewClientUsecase(mockRepo)

		mockRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)

		client, created, err := uc.InitClient(ctx, testIdentity, &domain.InitClientRequest{
			TargetJobTitle: "Backend Engineer",
		})
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, domain.ProfileStatusActive, client.ProfileStatus)
		assert.True(t, client.OnboardingCompleted)
		assert.NotNil(t, client.OnboardingCompletedAt)
	})

	t.Run("Should apply onboarding fields to an existing client", func(t *testing.T) {
		mockRepo := new(MockClientRepo)
		uc := usecase.NewClientUsecase(mockRepo)

		mockRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(existingClient(), nil)
		mockRepo.On("CompleteOnboarding", ctx, mock.AnythingOfType("*domain.Client")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Client)
			assert.Equal(t, "Backend Engineer", *c.TargetJobTitle)
			assert.Equal(t, "senior", *c.ExperienceLevel)
			assert.Equal(t, domain.ProfileStatusActive, c.ProfileStatus)
			assert.True(t, c.OnboardingCompleted)
		})

		client, created, err := uc.InitClient(ctx, testIdentity, &domain.InitClientRequest{
			TargetJobTitle:  "Backend Engineer",
			ExperienceLevel: "senior",
		})
		assert.NoError(t, err)
		assert.False(t, created)
		assert.True(t, client.OnboardingCompleted)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should re-read the winner after losing the insert race", func(t *testing.T) {
		mockRepo := new(MockClientRepo)
		uc := usecase.NewClientUsecase(mockRepo)

		winner := existingClient()
		mockRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(nil, domain.ErrNotFound).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Client")).Return(domain.ErrDuplicate)
		mockRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(winner, nil).Once()

		client, created, err := uc.InitClient(ctx, testIdentity, nil)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, winner.ID, client.ID)
	})
}

func TestApplicationCreateValidation(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should reject missing company_name and job_title together", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockClientRepo, validate)

		_, err := uc.Create(ctx, testIdentity, &domain.CreateApplicationRequest{})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)

		fields := make(map[string]string)
		for _, f := range appErr.Fields {
			fields[f.Field] = f.Message
		}
		assert.Contains(t, fields, "company_name")
		assert.Contains(t, fields, "job_title")

		// Nothing persisted, client never even looked up
		mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockClientRepo.AssertNotCalled(t, "GetByClerkUserID", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a malformed job_url", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockClientRepo, validate)

		_, err := uc.Create(ctx, testIdentity, &domain.CreateApplicationRequest{
			CompanyName: "Acme",
			JobTitle:    "Engineer",
			JobURL:      "not a url",
		})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Len(t, appErr.Fields, 1)
		assert.Equal(t, "job_url", appErr.Fields[0].Field)
		mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown status", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockClientRepo, validate)

		_, err := uc.Create(ctx, testIdentity, &domain.CreateApplicationRequest{
			CompanyName: "Acme",
			JobTitle:    "Engineer",
			Status:      "ghosted",
		})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "status", appErr.Fields[0].Field)
	})

	t.Run("Should default status to applied and null empty optionals", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockClientRepo, validate)

		mockClientRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(existingClient(), nil)
		mockAppRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Create(ctx, testIdentity, &domain.CreateApplicationRequest{
			CompanyName: "Acme",
			JobTitle:    "Engineer",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		assert.Nil(t, app.JobURL)
		assert.Nil(t, app.Notes)
		assert.Equal(t, "c1d2e3f4-0000-0000-0000-000000000001", app.ClientID)
	})

	t.Run("Should 404 when the identity has no client yet", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockClientRepo, validate)

		mockClientRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(nil, domain.ErrNotFound)

		_, err := uc.Create(ctx, testIdentity, &domain.CreateApplicationRequest{
			CompanyName: "Acme",
			JobTitle:    "Engineer",
		})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		mockAppRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestApplicationList(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should reject an invalid status filter before hitting the store", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockClientRepo, validate)

		_, err := uc.List(ctx, testIdentity, "ghosted")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		mockAppRepo.AssertNotCalled(t, "ListByClient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should compute stats over the filtered rows only", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockClientRepo, validate)

		mockClientRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(existingClient(), nil)
		mockAppRepo.On("ListByClient", ctx, "c1d2e3f4-0000-0000-0000-000000000001", "interviewing").Return([]domain.Application{
			{ID: "a1", Status: domain.ApplicationStatusInterviewing},
			{ID: "a2", Status: domain.ApplicationStatusInterviewing},
		}, nil)

		list, err := uc.List(ctx, testIdentity, "interviewing")
		assert.NoError(t, err)
		assert.Len(t, list.Data, 2)
		assert.Equal(t, 2, list.Stats.Total)
		assert.Equal(t, 2, list.Stats.Interviewing)
		assert.Equal(t, 0, list.Stats.Applied)
	})

	t.Run("Should return an empty list, not null, for a fresh client", func(t *testing.T) {
		mockAppRepo := new(MockApplicationRepo)
		mockClientRepo := new(MockClientRepo)
		uc := usecase.NewApplicationUsecase(mockAppRepo, mockClientRepo, validate)

		mockClientRepo.On("GetByClerkUserID", ctx, testIdentity.UserID).Return(existingClient(), nil)
		mockAppRepo.On("ListByClient", ctx, "c1d2e3f4-0000-0000-0000-000000000001", "").Return(nil, nil)

		list, err := uc.List(ctx, testIdentity, "")
		assert.NoError(t, err)
		assert.NotNil(t, list.Data)
		assert.Len(t, list.Data, 0)
		assert.Equal(t, 0, list.Stats.Total)
	})
}

func TestOnboardingOrchestration(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should require a target job title", func(t *testing.T) {
		uc := usecase.NewOnboardingUsecase(new(MockClientUC), new(MockApplicationUC), validate)

		_, err := uc.CompleteOnboarding(ctx, testIdentity, &domain.CompleteOnboardingRequest{})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "targetJobTitle", appErr.Fields[0].Field)
	})

	t.Run("Should seed a first application when job fields are present", func(t *testing.T) {
		mockClientUC := new(MockClientUC)
		mockAppUC := new(MockApplicationUC)
		uc := usecase.NewOnboardingUsecase(mockClientUC, mockAppUC, validate)

		client := existingClient()
		mockClientUC.On("InitClient", ctx, testIdentity, mock.AnythingOfType("*domain.InitClientRequest")).Return(client, false, nil)
		mockAppUC.On("Create", ctx, testIdentity, mock.AnythingOfType("*domain.CreateApplicationRequest")).Return(&domain.Application{
			ID:          "a1",
			CompanyName: "Acme",
			Status:      domain.ApplicationStatusApplied,
		}, nil).Run(func(args mock.Arguments) {
			req := args.Get(2).(*domain.CreateApplicationRequest)
			assert.Equal(t, "Acme", req.CompanyName)
			assert.Equal(t, domain.ApplicationStatusApplied, req.Status)
		})

		result, err := uc.CompleteOnboarding(ctx, testIdentity, &domain.CompleteOnboardingRequest{
			TargetJobTitle: "Backend Engineer",
			CompanyName:    "Acme",
			JobTitle:       "Engineer",
		})
		assert.NoError(t, err)
		assert.NotNil(t, result.SeedApplication)
		assert.Equal(t, "a1", result.SeedApplication.ID)
		mockAppUC.AssertExpectations(t)
	})

	t.Run("Should skip the seed when job fields are absent", func(t *testing.T) {
		mockClientUC := new(MockClientUC)
		mockAppUC := new(MockApplicationUC)
		uc := usecase.NewOnboardingUsecase(mockClientUC, mockAppUC, validate)

		mockClientUC.On("InitClient", ctx, testIdentity, mock.AnythingOfType("*domain.InitClientRequest")).Return(existingClient(), false, nil)

		result, err := uc.CompleteOnboarding(ctx, testIdentity, &domain.CompleteOnboardingRequest{
			TargetJobTitle: "Backend Engineer",
		})
		assert.NoError(t, err)
		assert.Nil(t, result.SeedApplication)
		mockAppUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should keep the client when the seed insert fails", func(t *testing.T) {
		mockClientUC := new(MockClientUC)
		mockAppUC := new(MockApplicationUC)
		uc := usecase.NewOnboardingUsecase(mockClientUC, mockAppUC, validate)

		client := existingClient()
		mockClientUC.On("InitClient", ctx, testIdentity, mock.AnythingOfType("*domain.InitClientRequest")).Return(client, false, nil)
		mockAppUC.On("Create", ctx, testIdentity, mock.AnythingOfType("*domain.CreateApplicationRequest")).Return(nil, apperror.Internal(errors.New("insert failed")))

		result, err := uc.CompleteOnboarding(ctx, testIdentity, &domain.CompleteOnboardingRequest{
			TargetJobTitle: "Backend Engineer",
			CompanyName:    "Acme",
			JobTitle:       "Engineer",
		})
		assert.NoError(t, err)
		assert.Equal(t, client.ID, result.Client.ID)
		assert.Nil(t, result.SeedApplication)
	})

	t.Run("Should fail onboarding when client init fails", func(t *testing.T) {
		mockClientUC := new(MockClientUC)
		mockAppUC := new(MockApplicationUC)
		uc := usecase.NewOnboardingUsecase(mockClientUC, mockAppUC, validate)

		mockClientUC.On("InitClient", ctx, testIdentity, mock.AnythingOfType("*domain.InitClientRequest")).Return(nil, false, apperror.Internal(errors.New("db down")))

		_, err := uc.CompleteOnboarding(ctx, testIdentity, &domain.CompleteOnboardingRequest{
			TargetJobTitle: "Backend Engineer",
			CompanyName:    "Acme",
			JobTitle:       "Engineer",
		})
		assert.Error(t, err)
		mockAppUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

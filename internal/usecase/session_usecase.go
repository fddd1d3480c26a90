package usecase

import (
	"context"
	"errors"
	"time"

	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"
	"careertrack-backend/pkg/email"
	"careertrack-backend/pkg/logger"
	"careertrack-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type sessionUsecase struct {
	sessionRepo domain.SessionRepository
	clientRepo  domain.ClientRepository
	emailSvc    *email.EmailService
	validate    *validator.Validate
}

// NewSessionUsecase creates a new coaching-session usecase. emailSvc may be
// nil; confirmations are then skipped.
func NewSessionUsecase(
	sessionRepo domain.SessionRepository,
	clientRepo domain.ClientRepository,
	emailSvc *email.EmailService,
	validate *validator.Validate,
) domain.SessionUsecase {
	return &sessionUsecase{
		sessionRepo: sessionRepo,
		clientRepo:  clientRepo,
		emailSvc:    emailSvc,
		validate:    validate,
	}
}

// ListTypes returns the bookable session formats
func (uc *sessionUsecase) ListTypes(ctx context.Context) ([]domain.InterviewType, error) {
	types, err := uc.sessionRepo.ListTypes(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if types == nil {
		types = []domain.InterviewType{}
	}
	return types, nil
}

// Book validates and persists one session. The coach and meeting link are
// assigned later by the coaching side; both stay NULL here.
func (uc *sessionUsecase) Book(ctx context.Context, identity domain.Identity, req *domain.BookSessionRequest) (*domain.Session, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	client, err := uc.resolveClient(ctx, identity)
	if err != nil {
		return nil, err
	}

	if !req.StartTime.After(time.Now()) {
		return nil, apperror.BadRequest("Session start time must be in the future")
	}

	sessionType, err := uc.sessionRepo.GetTypeByID(ctx, req.InterviewTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Session type not found")
		}
		return nil, apperror.Internal(err)
	}
	if !sessionType.IsActive {
		return nil, apperror.BadRequest("This session type is no longer offered")
	}

	overlap, err := uc.sessionRepo.HasOverlap(ctx, client.ID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if overlap {
		return nil, apperror.BadRequest("You already have a session booked in this time slot")
	}

	session := &domain.Session{
		ClientID:        client.ID,
		ApplicationID:   strPtr(req.ApplicationID),
		InterviewTypeID: &sessionType.ID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          domain.SessionStatusScheduled,
		Notes:           strPtr(req.Notes),
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}

	// Best effort: a failed confirmation email does not unbook the session
	if uc.emailSvc != nil && uc.emailSvc.IsConfigured() {
		mailErr := uc.emailSvc.SendSessionConfirmation(client.Email, email.SessionConfirmationData{
			ClientName:  client.FullName(),
			SessionType: sessionType.Name,
			StartTime:   session.StartTime,
			EndTime:     session.EndTime,
			Notes:       req.Notes,
		})
		if mailErr != nil {
			logger.Log.Warn("Session confirmation email failed",
				"session_id", session.ID, "error", mailErr)
		}
	}

	return session, nil
}

// List returns the client's sessions, soonest first
func (uc *sessionUsecase) List(ctx context.Context, identity domain.Identity) ([]domain.Session, error) {
	client, err := uc.resolveClient(ctx, identity)
	if err != nil {
		return nil, err
	}

	sessions, err := uc.sessionRepo.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}
	return sessions, nil
}

// Cancel moves a scheduled session to cancelled
func (uc *sessionUsecase) Cancel(ctx context.Context, identity domain.Identity, sessionID string) error {
	client, err := uc.resolveClient(ctx, identity)
	if err != nil {
		return err
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Session not found")
		}
		return apperror.Internal(err)
	}
	// Foreign sessions look exactly like missing ones
	if session.ClientID != client.ID {
		return apperror.NotFound("Session not found")
	}

	if session.Status != domain.SessionStatusScheduled {
		return apperror.BadRequest("Only scheduled sessions can be cancelled")
	}

	if err := uc.sessionRepo.UpdateStatus(ctx, session.ID, domain.SessionStatusCancelled); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *sessionUsecase) resolveClient(ctx context.Context, identity domain.Identity) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByClerkUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Client not found")
		}
		return nil, apperror.Internal(err)
	}
	return client, nil
}

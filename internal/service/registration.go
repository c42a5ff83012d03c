package service

import (
	"context"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/logger"
	"github.com/liaa-aa/Project-API/internal/repository"
)

type registrationService struct {
	regRepo   repository.RegistrationRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	emailSvc  EmailService
}

func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) RegistrationService {
	return &registrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

// Join admits the caller as a pending volunteer. The capacity gate and
// the insert run as one storage transaction, so two callers racing for
// the last open slot cannot both get in.
func (s *registrationService) Join(ctx context.Context, caller domain.Caller, eventID int32) (*domain.Registration, error) {
	if caller.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}

	reg, err := s.regRepo.CreatePending(ctx, caller.UserID, eventID)
	if err != nil {
		return nil, err
	}

	logger.Info("volunteer registered", "user_id", caller.UserID, "event_id", eventID, "registration_id", reg.ID)
	return reg, nil
}

// Cancel removes the caller's own registration for the event. Any
// status may be cancelled; cancelling an approved registration frees
// its capacity slot.
func (s *registrationService) Cancel(ctx context.Context, caller domain.Caller, eventID int32) (*domain.Registration, error) {
	if caller.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}

	reg, err := s.regRepo.DeleteByUserAndEvent(ctx, caller.UserID, eventID)
	if err != nil {
		return nil, err
	}

	logger.Info("registration cancelled", "user_id", caller.UserID, "event_id", eventID, "was_status", reg.Status)
	return reg, nil
}

// SetStatus lets an admin move a registration to any of the three
// statuses. Re-applying the current status succeeds without error.
func (s *registrationService) SetStatus(ctx context.Context, caller domain.Caller, registrationID int32, status domain.RegistrationStatus) (*domain.Registration, error) {
	if caller.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidRegistrationStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	reg, err := s.regRepo.UpdateStatus(ctx, registrationID, status)
	if err != nil {
		return nil, err
	}

	logger.Info("registration status updated", "registration_id", reg.ID, "status", status, "admin_id", caller.UserID)

	// Tell the volunteer about the decision. Delivery failures must not
	// fail the mutation itself.
	if status == domain.RegistrationStatusApproved || status == domain.RegistrationStatusRejected {
		user, uerr := s.userRepo.GetByID(ctx, reg.UserID)
		event, eerr := s.eventRepo.GetByID(ctx, reg.EventID)
		if uerr == nil && eerr == nil {
			if err := s.emailSvc.SendRegistrationDecision(ctx, user.Email, user.Name, event.Title, status); err != nil {
				logger.Warn("failed to send decision email", "registration_id", reg.ID, "error", err)
			}
		}
	}

	return reg, nil
}

func (s *registrationService) ListMine(ctx context.Context, caller domain.Caller) ([]domain.Registration, error) {
	if caller.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	return s.regRepo.ListByUser(ctx, caller.UserID)
}

func (s *registrationService) ListForEvent(ctx context.Context, caller domain.Caller, eventID int32) ([]domain.Registration, error) {
	if caller.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.regRepo.ListByEvent(ctx, eventID)
}

// Tally is a public-safe aggregate; no caller identity required.
func (s *registrationService) Tally(ctx context.Context, eventID int32) (*domain.Tally, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	tally := &domain.Tally{}
	var err error
	if tally.Pending, err = s.regRepo.CountByEventAndStatus(ctx, eventID, domain.RegistrationStatusPending); err != nil {
		return nil, err
	}
	if tally.Approved, err = s.regRepo.CountByEventAndStatus(ctx, eventID, domain.RegistrationStatusApproved); err != nil {
		return nil, err
	}
	if tally.Rejected, err = s.regRepo.CountByEventAndStatus(ctx, eventID, domain.RegistrationStatusRejected); err != nil {
		return nil, err
	}
	return tally, nil
}

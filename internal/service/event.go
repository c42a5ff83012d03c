package service

import (
	"context"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/logger"
	"github.com/liaa-aa/Project-API/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) CreateEvent(ctx context.Context, caller domain.Caller, event *domain.Event) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return err
	}
	logger.Info("event created", "event_id", event.ID, "title", event.Title, "admin_id", caller.UserID)
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, caller domain.Caller, id int32, upd *domain.EventUpdate) (*domain.Event, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.eventRepo.Update(ctx, id, upd)
}

// DeleteEvent removes the event and, through the storage layer's
// cascade, every registration referencing it.
func (s *eventService) DeleteEvent(ctx context.Context, caller domain.Caller, id int32) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("event deleted", "event_id", id, "admin_id", caller.UserID)
	return nil
}

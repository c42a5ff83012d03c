package repository

import (
	"context"

	"github.com/liaa-aa/Project-API/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int32) error

	// Certificates
	AddCertificate(ctx context.Context, cert *domain.Certificate) error
	ListCertificates(ctx context.Context, userID int32) ([]domain.Certificate, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	ListByDateRange(ctx context.Context, from, to string) ([]domain.Event, error)
	Update(ctx context.Context, id int32, upd *domain.EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id int32) error
}

type RegistrationRepository interface {
	// CreatePending inserts a pending registration for (userID, eventID)
	// inside a single transaction that locks the event row and checks the
	// approved count against capacity. Fails with domain.ErrEventNotFound,
	// domain.ErrCapacityFull or domain.ErrAlreadyRegistered.
	CreatePending(ctx context.Context, userID, eventID int32) (*domain.Registration, error)

	GetByID(ctx context.Context, id int32) (*domain.Registration, error)
	FindByUserAndEvent(ctx context.Context, userID, eventID int32) (*domain.Registration, error)
	CountByEventAndStatus(ctx context.Context, eventID int32, status domain.RegistrationStatus) (int32, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Registration, error)
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Registration, error)
	ListPendingForPastEvents(ctx context.Context, before string) ([]domain.Registration, error)
	UpdateStatus(ctx context.Context, id int32, status domain.RegistrationStatus) (*domain.Registration, error)
	DeleteByUserAndEvent(ctx context.Context, userID, eventID int32) (*domain.Registration, error)
}

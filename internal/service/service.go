package service

import (
	"context"

	"github.com/liaa-aa/Project-API/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error) // token, user
	GoogleSignIn(ctx context.Context, idToken string) (string, *domain.User, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	CreateUser(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error)
	UpdateUser(ctx context.Context, id int32, name, email, password string) (*domain.User, error)
	DeleteUser(ctx context.Context, id int32) error
	AddCertificate(ctx context.Context, userID int32, cert *domain.Certificate) error
}

type EventService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id int32) (*domain.Event, error)
	CreateEvent(ctx context.Context, caller domain.Caller, event *domain.Event) error
	UpdateEvent(ctx context.Context, caller domain.Caller, id int32, upd *domain.EventUpdate) (*domain.Event, error)
	DeleteEvent(ctx context.Context, caller domain.Caller, id int32) error
}

// RegistrationService is the only component that mutates the
// registration ledger.
type RegistrationService interface {
	Join(ctx context.Context, caller domain.Caller, eventID int32) (*domain.Registration, error)
	Cancel(ctx context.Context, caller domain.Caller, eventID int32) (*domain.Registration, error)
	SetStatus(ctx context.Context, caller domain.Caller, registrationID int32, status domain.RegistrationStatus) (*domain.Registration, error)
	ListMine(ctx context.Context, caller domain.Caller) ([]domain.Registration, error)
	ListForEvent(ctx context.Context, caller domain.Caller, eventID int32) ([]domain.Registration, error)
	Tally(ctx context.Context, eventID int32) (*domain.Tally, error)
}

type WeatherService interface {
	GetByCity(ctx context.Context, city string) (*domain.WeatherReport, error)
	GetByEvent(ctx context.Context, eventID int32) (*domain.EventWeather, error)
}

type EmailService interface {
	SendRegistrationDecision(ctx context.Context, email, name, eventTitle string, status domain.RegistrationStatus) error
	SendEventReminder(ctx context.Context, email, name, eventTitle, location, date string) error
}

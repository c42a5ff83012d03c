package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/liaa-aa/Project-API/internal/domain"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthService) GoogleSignIn(ctx context.Context, idToken string) (string, *domain.User, error) {
	args := m.Called(ctx, idToken)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, name, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, id int32, name, email, password string) (*domain.User, error) {
	args := m.Called(ctx, id, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserService) AddCertificate(ctx context.Context, userID int32, cert *domain.Certificate) error {
	args := m.Called(ctx, userID, cert)
	return args.Error(0)
}

// MockEventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventService) GetEvent(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) CreateEvent(ctx context.Context, caller domain.Caller, event *domain.Event) error {
	args := m.Called(ctx, caller, event)
	return args.Error(0)
}
func (m *MockEventService) UpdateEvent(ctx context.Context, caller domain.Caller, id int32, upd *domain.EventUpdate) (*domain.Event, error) {
	args := m.Called(ctx, caller, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventService) DeleteEvent(ctx context.Context, caller domain.Caller, id int32) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

// MockRegistrationService
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Join(ctx context.Context, caller domain.Caller, eventID int32) (*domain.Registration, error) {
	args := m.Called(ctx, caller, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationService) Cancel(ctx context.Context, caller domain.Caller, eventID int32) (*domain.Registration, error) {
	args := m.Called(ctx, caller, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationService) SetStatus(ctx context.Context, caller domain.Caller, registrationID int32, status domain.RegistrationStatus) (*domain.Registration, error) {
	args := m.Called(ctx, caller, registrationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationService) ListMine(ctx context.Context, caller domain.Caller) ([]domain.Registration, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationService) ListForEvent(ctx context.Context, caller domain.Caller, eventID int32) ([]domain.Registration, error) {
	args := m.Called(ctx, caller, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationService) Tally(ctx context.Context, eventID int32) (*domain.Tally, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tally), args.Error(1)
}

// MockWeatherService
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) GetByCity(ctx context.Context, city string) (*domain.WeatherReport, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeatherReport), args.Error(1)
}
func (m *MockWeatherService) GetByEvent(ctx context.Context, eventID int32) (*domain.EventWeather, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventWeather), args.Error(1)
}

package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/liaa-aa/Project-API/internal/config"
	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/repository/postgres"
)

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendRegistrationDecision(ctx context.Context, email, name, eventTitle string, status domain.RegistrationStatus) error {
	args := m.Called(ctx, email, name, eventTitle, status)
	return args.Error(0)
}
func (m *mockEmailService) SendEventReminder(ctx context.Context, email, name, eventTitle, location, date string) error {
	args := m.Called(ctx, email, name, eventTitle, location, date)
	return args.Error(0)
}

func TestExpirePendingRegistrations(t *testing.T) {
	db, dbmock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	store := postgres.NewStore(db)
	jr := NewJobRunner(db, store, &Services{Email: new(mockEmailService)}, &config.Config{})

	staleRows := sqlmock.NewRows([]string{"id", "user_id", "event_id", "status", "created_on", "updated_on"}).
		AddRow(11, 7, 1, "pending", time.Now(), time.Now()).
		AddRow(12, 8, 1, "pending", time.Now(), time.Now())
	dbmock.ExpectQuery("SELECT (.+) FROM registrations r").
		WithArgs(domain.RegistrationStatusPending, sqlmock.AnyArg()).
		WillReturnRows(staleRows)

	for _, id := range []int32{11, 12} {
		rows := sqlmock.NewRows([]string{"id", "user_id", "event_id", "status", "created_on", "updated_on"}).
			AddRow(id, 7, 1, "rejected", time.Now(), time.Now())
		dbmock.ExpectQuery("UPDATE registrations SET status = \\$1").
			WithArgs(domain.RegistrationStatusRejected, sqlmock.AnyArg(), id).
			WillReturnRows(rows)
	}

	jr.ExpirePendingRegistrations()
	assert.NoError(t, dbmock.ExpectationsWereMet())
}

func TestSendEventReminders(t *testing.T) {
	db, dbmock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	emailSvc := new(mockEmailService)
	store := postgres.NewStore(db)
	jr := NewJobRunner(db, store, &Services{Email: emailSvc}, &config.Config{})

	eventRows := sqlmock.NewRows([]string{"id", "title", "description", "location", "category", "date", "capacity", "photo_url", "created_on", "updated_on"}).
		AddRow(1, "Flood Relief", "Sandbagging", "Jakarta", "flood", time.Now().Add(12*time.Hour), 20, "", time.Now(), time.Now())
	dbmock.ExpectQuery("SELECT (.+) FROM events WHERE date >= \\$1 AND date < \\$2").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(eventRows)

	regRows := sqlmock.NewRows([]string{
		"id", "user_id", "event_id", "status", "created_on", "updated_on",
		"u_id", "name", "email", "role",
	}).
		AddRow(11, 7, 1, "approved", time.Now(), time.Now(), 7, "Siti", "siti@example.com", "volunteer").
		AddRow(12, 8, 1, "pending", time.Now(), time.Now(), 8, "Budi", "budi@example.com", "volunteer")
	dbmock.ExpectQuery("SELECT (.+) FROM registrations r").
		WithArgs(int32(1)).
		WillReturnRows(regRows)

	// Only the approved volunteer gets a reminder.
	emailSvc.On("SendEventReminder", mock.Anything, "siti@example.com", "Siti", "Flood Relief", "Jakarta", mock.AnythingOfType("string")).Return(nil)

	jr.SendEventReminders()
	emailSvc.AssertExpectations(t)
	emailSvc.AssertNumberOfCalls(t, "SendEventReminder", 1)
	assert.NoError(t, dbmock.ExpectationsWereMet())
}

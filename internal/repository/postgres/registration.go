package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/repository"
)

type registrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

// uniqueViolation is the Postgres error code raised when the
// (user_id, event_id) unique index rejects an insert.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// CreatePending is the admission path for new registrations. The event
// row is locked for the duration of the transaction so that two joins
// racing for the last open slot serialize: the second one re-counts
// after the first commits and is turned away. The unique index on
// (user_id, event_id) backstops duplicates regardless.
func (r *registrationRepository) CreatePending(ctx context.Context, userID, eventID int32) (*domain.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var capacity int32
	err = tx.QueryRowContext(ctx, `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	var approved int32
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`,
		eventID, domain.RegistrationStatusApproved).Scan(&approved)
	if err != nil {
		return nil, err
	}
	// Capacity of zero or less means unlimited. The gate compares the
	// approved count only; pending requests do not hold a slot.
	if capacity > 0 && approved >= capacity {
		return nil, domain.ErrCapacityFull
	}

	now := time.Now()
	reg := &domain.Registration{
		UserID:    userID,
		EventID:   eventID,
		Status:    domain.RegistrationStatusPending,
		CreatedOn: now.Format(timeLayout),
		UpdatedOn: now.Format(timeLayout),
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO registrations (user_id, event_id, status, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, eventID, reg.Status, now, now).Scan(&reg.ID)
	if isUniqueViolation(err) {
		return nil, domain.ErrAlreadyRegistered
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id int32) (*domain.Registration, error) {
	reg := &domain.Registration{}
	query := `SELECT id, user_id, event_id, status, created_on, updated_on FROM registrations WHERE id = $1`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	reg.CreatedOn = createdOn.Format(timeLayout)
	reg.UpdatedOn = updatedOn.Format(timeLayout)
	return reg, nil
}

func (r *registrationRepository) FindByUserAndEvent(ctx context.Context, userID, eventID int32) (*domain.Registration, error) {
	reg := &domain.Registration{}
	query := `SELECT id, user_id, event_id, status, created_on, updated_on FROM registrations WHERE user_id = $1 AND event_id = $2`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, userID, eventID).Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	reg.CreatedOn = createdOn.Format(timeLayout)
	reg.UpdatedOn = updatedOn.Format(timeLayout)
	return reg, nil
}

func (r *registrationRepository) CountByEventAndStatus(ctx context.Context, eventID int32, status domain.RegistrationStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`,
		eventID, status).Scan(&count)
	return count, err
}

// ListByUser returns the caller's registrations newest first, each with
// its event attached so clients can render the list without extra calls.
func (r *registrationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Registration, error) {
	query := `SELECT r.id, r.user_id, r.event_id, r.status, r.created_on, r.updated_on,
	                 e.id, e.title, e.description, e.location, e.category, e.date, e.capacity, COALESCE(e.photo_url, '')
	          FROM registrations r
	          JOIN events e ON e.id = r.event_id
	          WHERE r.user_id = $1
	          ORDER BY r.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		var e domain.Event
		var createdOn, updatedOn, eventDate time.Time
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &createdOn, &updatedOn,
			&e.ID, &e.Title, &e.Description, &e.Location, &e.Category, &eventDate, &e.Capacity, &e.PhotoURL); err != nil {
			return nil, err
		}
		reg.CreatedOn = createdOn.Format(timeLayout)
		reg.UpdatedOn = updatedOn.Format(timeLayout)
		e.Date = eventDate.Format(timeLayout)
		reg.Event = &e
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// ListByEvent returns an event's registrations oldest first, with the
// registering user's safe fields attached.
func (r *registrationRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.Registration, error) {
	query := `SELECT r.id, r.user_id, r.event_id, r.status, r.created_on, r.updated_on,
	                 u.id, u.name, u.email, u.role
	          FROM registrations r
	          JOIN users u ON u.id = r.user_id
	          WHERE r.event_id = $1
	          ORDER BY r.created_on ASC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		var u domain.User
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &createdOn, &updatedOn,
			&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		reg.CreatedOn = createdOn.Format(timeLayout)
		reg.UpdatedOn = updatedOn.Format(timeLayout)
		reg.User = &u
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) ListPendingForPastEvents(ctx context.Context, before string) ([]domain.Registration, error) {
	query := `SELECT r.id, r.user_id, r.event_id, r.status, r.created_on, r.updated_on
	          FROM registrations r
	          JOIN events e ON e.id = r.event_id
	          WHERE r.status = $1 AND e.date < $2`
	rows, err := r.db.QueryContext(ctx, query, domain.RegistrationStatusPending, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		reg.CreatedOn = createdOn.Format(timeLayout)
		reg.UpdatedOn = updatedOn.Format(timeLayout)
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id int32, status domain.RegistrationStatus) (*domain.Registration, error) {
	reg := &domain.Registration{}
	query := `UPDATE registrations SET status = $1, updated_on = $2 WHERE id = $3
	          RETURNING id, user_id, event_id, status, created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, status, time.Now(), id).Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	reg.CreatedOn = createdOn.Format(timeLayout)
	reg.UpdatedOn = updatedOn.Format(timeLayout)
	return reg, nil
}

func (r *registrationRepository) DeleteByUserAndEvent(ctx context.Context, userID, eventID int32) (*domain.Registration, error) {
	reg := &domain.Registration{}
	query := `DELETE FROM registrations WHERE user_id = $1 AND event_id = $2
	          RETURNING id, user_id, event_id, status, created_on, updated_on`
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, userID, eventID).Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	reg.CreatedOn = createdOn.Format(timeLayout)
	reg.UpdatedOn = updatedOn.Format(timeLayout)
	return reg, nil
}

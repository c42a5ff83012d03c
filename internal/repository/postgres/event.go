package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (title, description, location, category, date, capacity, photo_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	e.CreatedOn = now.Format(timeLayout)
	e.UpdatedOn = e.CreatedOn
	return r.db.QueryRowContext(ctx, query, e.Title, e.Description, e.Location, e.Category, e.Date, e.Capacity, e.PhotoURL, now, now).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	e := &domain.Event{}
	query := `SELECT id, title, description, location, category, date, capacity, COALESCE(photo_url, ''), created_on, updated_on FROM events WHERE id = $1`
	var date, createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Category, &date, &e.Capacity, &e.PhotoURL, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	e.Date = date.Format(timeLayout)
	e.CreatedOn = createdOn.Format(timeLayout)
	e.UpdatedOn = updatedOn.Format(timeLayout)
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, title, description, location, category, date, capacity, COALESCE(photo_url, ''), created_on, updated_on FROM events ORDER BY date ASC`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) ListByDateRange(ctx context.Context, from, to string) ([]domain.Event, error) {
	query := `SELECT id, title, description, location, category, date, capacity, COALESCE(photo_url, ''), created_on, updated_on
	          FROM events WHERE date >= $1 AND date < $2 ORDER BY date ASC`
	return r.queryEvents(ctx, query, from, to)
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		var date, createdOn, updatedOn time.Time
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Category, &date, &e.Capacity, &e.PhotoURL, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		e.Date = date.Format(timeLayout)
		e.CreatedOn = createdOn.Format(timeLayout)
		e.UpdatedOn = updatedOn.Format(timeLayout)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id int32, upd *domain.EventUpdate) (*domain.Event, error) {
	query := `UPDATE events SET
	            title       = COALESCE($1, title),
	            description = COALESCE($2, description),
	            location    = COALESCE($3, location),
	            category    = COALESCE($4, category),
	            date        = COALESCE($5::timestamptz, date),
	            capacity    = COALESCE($6::int, capacity),
	            photo_url   = COALESCE($7, photo_url),
	            updated_on  = $8
	          WHERE id = $9`
	res, err := r.db.ExecContext(ctx, query, upd.Title, upd.Description, upd.Location, upd.Category, upd.Date, upd.Capacity, upd.PhotoURL, time.Now(), id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.ErrEventNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the event. Registrations referencing it go with it,
// via ON DELETE CASCADE on registrations.event_id.
func (r *eventRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, password_hash, role, google_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7) RETURNING id`
	now := time.Now()
	u.CreatedOn = now.Format(timeLayout)
	u.UpdatedOn = u.CreatedOn
	err := r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, u.GoogleID, now, now).Scan(&u.ID)
	if isUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *userRepository) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getBy(ctx, `WHERE google_id = $1`, googleID)
}

func (r *userRepository) getBy(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email, password_hash, role, COALESCE(google_id, ''), created_on, updated_on FROM users ` + where
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.GoogleID, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format(timeLayout)
	u.UpdatedOn = updatedOn.Format(timeLayout)
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, name, email, password_hash, role, COALESCE(google_id, ''), created_on, updated_on FROM users ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.GoogleID, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format(timeLayout)
		u.UpdatedOn = updatedOn.Format(timeLayout)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name = $1, email = $2, password_hash = $3, role = $4, google_id = NULLIF($5, ''), updated_on = $6 WHERE id = $7`
	now := time.Now()
	u.UpdatedOn = now.Format(timeLayout)
	res, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, u.GoogleID, now, u.ID)
	if isUniqueViolation(err) {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) AddCertificate(ctx context.Context, c *domain.Certificate) error {
	query := `INSERT INTO user_certificates (user_id, name, provider, date_issued, date_expired, certificate_number, category, photo_url)
	          VALUES ($1, $2, $3, $4::timestamptz, $5::timestamptz, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.UserID, c.Name, c.Provider, c.DateIssued, c.DateExpired, c.CertificateNumber, c.Category, c.PhotoURL).Scan(&c.ID)
}

func (r *userRepository) ListCertificates(ctx context.Context, userID int32) ([]domain.Certificate, error) {
	query := `SELECT id, user_id, name, COALESCE(provider, ''), date_issued, date_expired, COALESCE(certificate_number, ''), COALESCE(category, ''), COALESCE(photo_url, '')
	          FROM user_certificates WHERE user_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []domain.Certificate
	for rows.Next() {
		var c domain.Certificate
		var issued, expired sql.NullTime
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Provider, &issued, &expired, &c.CertificateNumber, &c.Category, &c.PhotoURL); err != nil {
			return nil, err
		}
		if issued.Valid {
			s := issued.Time.Format(timeLayout)
			c.DateIssued = &s
		}
		if expired.Valid {
			s := expired.Time.Format(timeLayout)
			c.DateExpired = &s
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

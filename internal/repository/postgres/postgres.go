package postgres

import (
	"database/sql"

	"github.com/liaa-aa/Project-API/internal/repository"

	_ "github.com/lib/pq"
)

// timeLayout is the wire format for every timestamp leaving this package.
const timeLayout = "2006-01-02T15:04:05Z07:00"

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EventRepository
	repository.RegistrationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		EventRepository:        NewEventRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
	}
}

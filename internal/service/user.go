package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	certs, err := s.userRepo.ListCertificates(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Certificates = certs
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error) {
	if role == "" {
		role = domain.UserRoleVolunteer
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the fields the caller supplied; empty strings
// leave the stored value alone. A new password is re-hashed.
func (s *userService) UpdateUser(ctx context.Context, id int32, name, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if password != "" {
		hash, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		user.PasswordHash = string(hash)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int32) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) AddCertificate(ctx context.Context, userID int32, cert *domain.Certificate) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	cert.UserID = userID
	return s.userRepo.AddCertificate(ctx, cert)
}

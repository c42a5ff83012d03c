package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/logger"
	"github.com/liaa-aa/Project-API/internal/repository"
	"github.com/liaa-aa/Project-API/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	google   security.GoogleVerifier // nil when Google sign-in is disabled
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, google security.GoogleVerifier) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		google:   google,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.UserRoleVolunteer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GoogleSignIn verifies a Google ID token and issues the application's
// own JWT. A first-time caller gets an account created from the token's
// profile claims; a returning caller is matched by Google subject, then
// by email (which links a password account to its Google identity).
func (s *authService) GoogleSignIn(ctx context.Context, idToken string) (string, *domain.User, error) {
	if s.google == nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByGoogleID(ctx, identity.Subject)
	if errors.Is(err, domain.ErrUserNotFound) && identity.Email != "" {
		user, err = s.userRepo.GetByEmail(ctx, identity.Email)
		if err == nil {
			user.GoogleID = identity.Subject
			if uerr := s.userRepo.Update(ctx, user); uerr != nil {
				return "", nil, uerr
			}
		}
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &domain.User{
			Name:     identity.Name,
			Email:    identity.Email,
			Role:     domain.UserRoleVolunteer,
			GoogleID: identity.Subject,
		}
		if cerr := s.userRepo.Create(ctx, user); cerr != nil {
			return "", nil, cerr
		}
		logger.Info("user created via google sign-in", "user_id", user.ID)
	} else if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

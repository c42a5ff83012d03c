package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/security"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager), nil)

		userRepo.On("GetByEmail", ctx, "budi@example.com").Return(nil, domain.ErrUserNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, "Budi", "budi@example.com", "s3cret-pass")
		assert.NoError(t, err)
		assert.Equal(t, domain.UserRoleVolunteer, user.Role)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
	})

	t.Run("Email Taken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager), nil)

		userRepo.On("GetByEmail", ctx, "budi@example.com").Return(&domain.User{ID: 3}, nil)

		user, err := svc.Register(ctx, "Budi", "budi@example.com", "s3cret-pass")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		assert.Nil(t, user)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	stored := &domain.User{ID: 3, Name: "Budi", Email: "budi@example.com", PasswordHash: string(hash), Role: domain.UserRoleVolunteer}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(userRepo, tokens, nil)

		userRepo.On("GetByEmail", ctx, "budi@example.com").Return(stored, nil)
		tokens.On("GenerateToken", stored).Return("signed-token", nil)

		token, user, err := svc.Login(ctx, "budi@example.com", "s3cret-pass")
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, int32(3), user.ID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager), nil)

		userRepo.On("GetByEmail", ctx, "budi@example.com").Return(stored, nil)

		token, user, err := svc.Login(ctx, "budi@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockTokenManager), nil)

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "s3cret-pass")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_GoogleSignIn(t *testing.T) {
	ctx := context.Background()
	identity := &security.GoogleIdentity{Subject: "google-sub-1", Email: "budi@example.com", Name: "Budi"}

	t.Run("Verifier Disabled", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockTokenManager), nil)

		_, _, err := svc.GoogleSignIn(ctx, "id-token")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Invalid ID Token", func(t *testing.T) {
		verifier := new(MockGoogleVerifier)
		svc := NewAuthService(new(MockUserRepo), new(MockTokenManager), verifier)

		verifier.On("Verify", ctx, "bad-token").Return(nil, assert.AnError)

		_, _, err := svc.GoogleSignIn(ctx, "bad-token")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Returning User Matched By Subject", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		verifier := new(MockGoogleVerifier)
		svc := NewAuthService(userRepo, tokens, verifier)

		stored := &domain.User{ID: 3, Email: "budi@example.com", GoogleID: "google-sub-1"}
		verifier.On("Verify", ctx, "id-token").Return(identity, nil)
		userRepo.On("GetByGoogleID", ctx, "google-sub-1").Return(stored, nil)
		tokens.On("GenerateToken", stored).Return("signed-token", nil)

		token, user, err := svc.GoogleSignIn(ctx, "id-token")
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, int32(3), user.ID)
	})

	t.Run("Links Existing Password Account By Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		verifier := new(MockGoogleVerifier)
		svc := NewAuthService(userRepo, tokens, verifier)

		stored := &domain.User{ID: 3, Email: "budi@example.com"}
		verifier.On("Verify", ctx, "id-token").Return(identity, nil)
		userRepo.On("GetByGoogleID", ctx, "google-sub-1").Return(nil, domain.ErrUserNotFound)
		userRepo.On("GetByEmail", ctx, "budi@example.com").Return(stored, nil)
		userRepo.On("Update", ctx, stored).Return(nil)
		tokens.On("GenerateToken", stored).Return("signed-token", nil)

		_, user, err := svc.GoogleSignIn(ctx, "id-token")
		assert.NoError(t, err)
		assert.Equal(t, "google-sub-1", user.GoogleID)
		userRepo.AssertCalled(t, "Update", ctx, stored)
	})

	t.Run("First Time Caller Gets Account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		verifier := new(MockGoogleVerifier)
		svc := NewAuthService(userRepo, tokens, verifier)

		verifier.On("Verify", ctx, "id-token").Return(identity, nil)
		userRepo.On("GetByGoogleID", ctx, "google-sub-1").Return(nil, domain.ErrUserNotFound)
		userRepo.On("GetByEmail", ctx, "budi@example.com").Return(nil, domain.ErrUserNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		tokens.On("GenerateToken", mock.AnythingOfType("*domain.User")).Return("signed-token", nil)

		_, user, err := svc.GoogleSignIn(ctx, "id-token")
		assert.NoError(t, err)
		assert.Equal(t, domain.UserRoleVolunteer, user.Role)
		assert.Equal(t, "google-sub-1", user.GoogleID)
		userRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*domain.User"))
	})
}

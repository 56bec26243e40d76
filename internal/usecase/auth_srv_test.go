package usecase

import (
	"context"
	"errors"
	"testing"

	"club-booking/internal/data/entity"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	users    *MockUserRepository
	sessions *MockSessionRepository
	otps     *MockOTPRepository
	mailer   *MockMailer
	svc      AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    new(MockUserRepository),
		sessions: new(MockSessionRepository),
		otps:     new(MockOTPRepository),
		mailer:   new(MockMailer),
	}
	repo := &repository.Repository{User: f.users, Session: f.sessions, OTP: f.otps}
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24, BcryptCost: bcrypt.MinCost},
		OTP:     utils.OTPConfig{ExpiryMinutes: 10, Length: 6},
	}
	f.svc = NewAuthService(repo, f.mailer, config, zap.NewNop())
	return f
}

func parentWithPassword(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		Base:          entity.Base{ID: uuid.New()},
		Username:      "jane",
		Email:         "jane@example.com",
		PasswordHash:  hash,
		Role:          entity.RoleParent,
		EmailVerified: true,
		IsActive:      true,
	}
}

func TestRegister(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil).Once()
	f.users.On("FindByUsername", mock.Anything, "jane").Return(nil, nil).Once()
	f.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil).Once()
	f.otps.On("Create", mock.Anything, mock.MatchedBy(func(o *entity.OTP) bool {
		return o.Type == entity.OTPTypeEmailVerification && len(o.Code) == 6 && o.Email == "jane@example.com"
	})).Return(nil).Once()
	f.mailer.On("SendOTP", mock.Anything, mock.AnythingOfType("*entity.OTP")).Return(nil).Once()

	resp, err := f.svc.Register(context.Background(), &request.RegisterRequest{
		Username: "jane",
		Email:    " Jane@Example.com ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Empty(t, resp.Token)

	f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.users.AssertExpectations(t)
	f.otps.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(&entity.User{}, nil).Once()

	_, err := f.svc.Register(context.Background(), &request.RegisterRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestLogin(t *testing.T) {
	t.Run("by email", func(t *testing.T) {
		f := newAuthFixture()
		user := parentWithPassword(t, "secret123")
		f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil).Once()
		f.sessions.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil).Once()

		resp, err := f.svc.Login(context.Background(), &request.LoginRequest{Identifier: "JANE@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.ExpiresAt)
		f.sessions.AssertExpectations(t)
	})

	t.Run("by username", func(t *testing.T) {
		f := newAuthFixture()
		user := parentWithPassword(t, "secret123")
		f.users.On("FindByUsername", mock.Anything, "jane").Return(user, nil).Once()
		f.sessions.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := f.svc.Login(context.Background(), &request.LoginRequest{Identifier: "jane", Password: "secret123"})
		require.NoError(t, err)
		f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByUsername", mock.Anything, "jane").Return(parentWithPassword(t, "secret123"), nil).Once()

		_, err := f.svc.Login(context.Background(), &request.LoginRequest{Identifier: "jane", Password: "wrong-one"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByUsername", mock.Anything, "nobody").Return(nil, nil).Once()

		_, err := f.svc.Login(context.Background(), &request.LoginRequest{Identifier: "nobody", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("email not verified", func(t *testing.T) {
		f := newAuthFixture()
		user := parentWithPassword(t, "secret123")
		user.EmailVerified = false
		f.users.On("FindByUsername", mock.Anything, "jane").Return(user, nil).Once()

		_, err := f.svc.Login(context.Background(), &request.LoginRequest{Identifier: "jane", Password: "secret123"})
		assert.ErrorIs(t, err, ErrForbidden)
		f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("deactivated", func(t *testing.T) {
		f := newAuthFixture()
		user := parentWithPassword(t, "secret123")
		user.IsActive = false
		f.users.On("FindByUsername", mock.Anything, "jane").Return(user, nil).Once()

		_, err := f.svc.Login(context.Background(), &request.LoginRequest{Identifier: "jane", Password: "secret123"})
		assert.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestLogout(t *testing.T) {
	f := newAuthFixture()
	token := uuid.New()
	f.sessions.On("Revoke", mock.Anything, token).Return(nil).Once()

	require.NoError(t, f.svc.Logout(context.Background(), token.String()))
	assert.ErrorIs(t, f.svc.Logout(context.Background(), "not-a-token"), ErrValidation)
	f.sessions.AssertExpectations(t)
}

func TestVerifyEmail(t *testing.T) {
	f := newAuthFixture()
	user := parentWithPassword(t, "secret123")
	user.EmailVerified = false
	otp := &entity.OTP{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: user.ID}

	f.otps.On("FindValid", mock.Anything, "jane@example.com", "123456", entity.OTPTypeEmailVerification).Return(otp, nil).Once()
	f.otps.On("MarkAsUsed", mock.Anything, otp.ID).Return(nil).Once()
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
	f.users.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.EmailVerified })).Return(nil).Once()

	err := f.svc.VerifyEmail(context.Background(), &request.VerifyEmailRequest{Email: "jane@example.com", OTP: "123456"})
	require.NoError(t, err)
	f.otps.AssertExpectations(t)
	f.users.AssertExpectations(t)
}

func TestVerifyEmail_InvalidCode(t *testing.T) {
	f := newAuthFixture()
	f.otps.On("FindValid", mock.Anything, "jane@example.com", "000000", entity.OTPTypeEmailVerification).Return(nil, nil).Once()

	err := f.svc.VerifyEmail(context.Background(), &request.VerifyEmailRequest{Email: "jane@example.com", OTP: "000000"})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestResetPassword_RevokesSessions(t *testing.T) {
	f := newAuthFixture()
	user := parentWithPassword(t, "secret123")
	otp := &entity.OTP{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: user.ID}

	f.otps.On("FindValid", mock.Anything, "jane@example.com", "654321", entity.OTPTypePasswordReset).Return(otp, nil).Once()
	f.otps.On("MarkAsUsed", mock.Anything, otp.ID).Return(nil).Once()
	f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
	f.users.On("UpdatePassword", mock.Anything, user.ID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("brand-new", hash)
	})).Return(nil).Once()
	f.sessions.On("RevokeAllForUser", mock.Anything, user.ID).Return(nil).Once()

	err := f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Email:       "jane@example.com",
		OTP:         "654321",
		NewPassword: "brand-new",
	})
	require.NoError(t, err)
	f.users.AssertExpectations(t)
	f.sessions.AssertExpectations(t)
}

func TestSendOTP_AlreadyVerified(t *testing.T) {
	f := newAuthFixture()
	f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(parentWithPassword(t, "secret123"), nil).Once()

	err := f.svc.SendOTP(context.Background(), &request.SendOTPRequest{Email: "jane@example.com", Type: "email_verification"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	f.otps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendOTP_PasswordReset(t *testing.T) {
	f := newAuthFixture()
	user := parentWithPassword(t, "secret123")
	f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil).Once()
	f.otps.On("Create", mock.Anything, mock.MatchedBy(func(o *entity.OTP) bool {
		return o.UserID == user.ID && o.Type == entity.OTPTypePasswordReset
	})).Return(nil).Once()
	f.mailer.On("SendOTP", mock.Anything, mock.Anything).Return(errors.New("postmark down")).Once()

	err := f.svc.SendOTP(context.Background(), &request.SendOTPRequest{Email: "jane@example.com", Type: "password_reset"})
	assert.ErrorIs(t, err, ErrPersistence)
	f.mailer.AssertExpectations(t)
}

func TestAuthService_NormalizesEmailBeforeValidation(t *testing.T) {
	t.Run("send otp", func(t *testing.T) {
		f := newAuthFixture()
		user := parentWithPassword(t, "secret123")
		f.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(user, nil).Once()
		f.otps.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.mailer.On("SendOTP", mock.Anything, mock.Anything).Return(nil).Once()

		err := f.svc.SendOTP(context.Background(), &request.SendOTPRequest{Email: " JANE@example.com ", Type: "password_reset"})
		require.NoError(t, err)
		f.users.AssertExpectations(t)
	})

	t.Run("verify email", func(t *testing.T) {
		f := newAuthFixture()
		f.otps.On("FindValid", mock.Anything, "jane@example.com", "123456", entity.OTPTypeEmailVerification).Return(nil, nil).Once()

		err := f.svc.VerifyEmail(context.Background(), &request.VerifyEmailRequest{Email: "Jane@Example.com ", OTP: "123456"})
		assert.ErrorIs(t, err, ErrInvalidOTP)
		f.otps.AssertExpectations(t)
	})

	t.Run("reset password", func(t *testing.T) {
		f := newAuthFixture()
		f.otps.On("FindValid", mock.Anything, "jane@example.com", "654321", entity.OTPTypePasswordReset).Return(nil, nil).Once()

		err := f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
			Email:       "  jane@EXAMPLE.com",
			OTP:         "654321",
			NewPassword: "brand-new",
		})
		assert.ErrorIs(t, err, ErrInvalidOTP)
		f.otps.AssertExpectations(t)
	})
}

func TestVerifyEmail_UsesConfiguredOTPLength(t *testing.T) {
	f := newAuthFixture()
	f.svc.(*authService).config.OTP.Length = 4
	f.otps.On("FindValid", mock.Anything, "jane@example.com", "1234", entity.OTPTypeEmailVerification).Return(nil, nil).Once()

	err := f.svc.VerifyEmail(context.Background(), &request.VerifyEmailRequest{Email: "jane@example.com", OTP: "1234"})
	assert.ErrorIs(t, err, ErrInvalidOTP)

	err = f.svc.VerifyEmail(context.Background(), &request.VerifyEmailRequest{Email: "jane@example.com", OTP: "123456"})
	assert.ErrorIs(t, err, ErrValidation)

	err = f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{Email: "jane@example.com", OTP: "12", NewPassword: "brand-new"})
	assert.ErrorIs(t, err, ErrValidation)

	f.otps.AssertNumberOfCalls(t, "FindValid", 1)
}

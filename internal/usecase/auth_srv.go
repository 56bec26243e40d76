package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"club-booking/internal/data/entity"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/internal/notify"
	"club-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	SendOTP(ctx context.Context, req *request.SendOTPRequest) error
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository // user, session and otp
	mailer notify.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, mailer notify.Mailer, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		mailer: mailer,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func normalizeEmail(email string) string {
	return request.NormalizeEmail(email)
}

func (s *authService) checkOTPLength(code string) error {
	if len(code) != s.config.OTP.Length {
		return newError(ErrValidation, fmt.Sprintf("validation failed: otp: Must be exactly %d digits", s.config.OTP.Length))
	}
	return nil
}

// Register creates an unverified parent account and mails a
// verification code. No session is opened until the email is verified.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}

	email := req.Email

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, wrapError(ErrPersistence, "Failed to create account. Please try again.", err)
	}
	if existing != nil {
		return nil, newError(ErrAlreadyExists, "An account with this email already exists. Try signing in instead.")
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, wrapError(ErrPersistence, "Failed to create account. Please try again.", err)
	}
	if existing != nil {
		return nil, newError(ErrAlreadyExists, "This username is already taken.")
	}

	hash, err := utils.HashPassword(req.Password, s.config.Session.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, wrapError(ErrPersistence, "Failed to process password.", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     req.Username,
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         entity.RoleParent,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, wrapError(ErrPersistence, "Failed to create account. Please try again.", err)
	}

	if err := s.issueOTP(ctx, user, entity.OTPTypeEmailVerification); err != nil {
		// the parent can ask for a new code through send-otp
		s.log.Warn("Failed to issue verification code", zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("Parent registered", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, nil)
	return &resp, nil
}

// Login accepts an email address or a username.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}

	identifier := strings.TrimSpace(req.Identifier)

	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.repo.User.FindByEmail(ctx, normalizeEmail(identifier))
	} else {
		user, err = s.repo.User.FindByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, wrapError(ErrPersistence, "Network error. Please check your connection and try again.", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("identifier", identifier))
		return nil, newError(ErrInvalidCredentials, "Invalid email or password. Please check your credentials and try again.")
	}

	if !user.IsActive {
		return nil, newError(ErrAccountInactive, "This account has been deactivated.")
	}

	if !user.EmailVerified {
		return nil, newError(ErrForbidden, "Please verify your email address before signing in.")
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, wrapError(ErrPersistence, "Failed to sign in. Please try again.", err)
	}

	s.log.Info("Parent logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenID, err := uuid.Parse(token)
	if err != nil {
		return newError(ErrValidation, "Invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenID); err != nil {
		return wrapError(ErrPersistence, "Failed to sign out. Please try again.", err)
	}

	return nil
}

func (s *authService) SendOTP(ctx context.Context, req *request.SendOTPRequest) error {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return wrapError(ErrPersistence, "Failed to send code. Please try again.", err)
	}
	if user == nil {
		return newError(ErrNotFound, "No account found for this email address.")
	}

	otpType := entity.OTPType(req.Type)
	if otpType == entity.OTPTypeEmailVerification && user.EmailVerified {
		return newError(ErrAlreadyExists, "This email address is already verified.")
	}

	if err := s.issueOTP(ctx, user, otpType); err != nil {
		return wrapError(ErrPersistence, "Failed to send code. Please try again.", err)
	}

	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}
	if err := s.checkOTPLength(req.OTP); err != nil {
		return err
	}

	user, err := s.consumeOTP(ctx, req.Email, req.OTP, entity.OTPTypeEmailVerification)
	if err != nil {
		return err
	}

	user.EmailVerified = true
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return wrapError(ErrPersistence, "Failed to verify email. Please try again.", err)
	}

	s.log.Info("Email verified", zap.String("user_id", user.ID.String()))
	return nil
}

// ResetPassword sets a new password and signs the parent out everywhere.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}
	if err := s.checkOTPLength(req.OTP); err != nil {
		return err
	}

	user, err := s.consumeOTP(ctx, req.Email, req.OTP, entity.OTPTypePasswordReset)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword, s.config.Session.BcryptCost)
	if err != nil {
		return wrapError(ErrPersistence, "Failed to process password.", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hash); err != nil {
		return wrapError(ErrPersistence, "Failed to reset password. Please try again.", err)
	}

	if err := s.repo.Session.RevokeAllForUser(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke sessions after password reset",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) consumeOTP(ctx context.Context, email, code string, otpType entity.OTPType) (*entity.User, error) {
	email = normalizeEmail(email)

	otp, err := s.repo.OTP.FindValid(ctx, email, code, otpType)
	if err != nil {
		return nil, wrapError(ErrPersistence, "Failed to verify code. Please try again.", err)
	}
	if otp == nil {
		return nil, newError(ErrInvalidOTP, "Invalid or expired code. Please request a new one.")
	}

	user, err := s.repo.User.FindByID(ctx, otp.UserID)
	if err != nil {
		return nil, wrapError(ErrPersistence, "Failed to verify code. Please try again.", err)
	}
	if user == nil {
		return nil, newError(ErrNotFound, "No account found for this email address.")
	}

	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		return nil, wrapError(ErrPersistence, "Failed to verify code. Please try again.", err)
	}

	return user, nil
}

// issueOTP stores a fresh code and mails it.
func (s *authService) issueOTP(ctx context.Context, user *entity.User, otpType entity.OTPType) error {
	now := time.Now().UTC()
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
		Email:      user.Email,
		Code:       utils.GenerateOTP(s.config.OTP.Length),
		Type:       otpType,
		ExpiresAt:  now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		return err
	}

	if err := s.mailer.SendOTP(ctx, otp); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	s.log.Info("OTP issued", zap.String("user_id", user.ID.String()), zap.String("otp_type", string(otpType)))
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	now := time.Now().UTC()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     userID,
		Token:      utils.GenerateSessionToken(),
		ExpiresAt:  now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

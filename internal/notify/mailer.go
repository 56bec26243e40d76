// Package notify delivers one-time codes to parents.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"club-booking/internal/data/entity"

	"github.com/mrz1836/postmark"
	"go.uber.org/zap"
)

var ErrSendFailed = errors.New("failed to send email")

// Mailer sends the OTP mail for verification and password reset.
type Mailer interface {
	SendOTP(ctx context.Context, otp *entity.OTP) error
}

type postmarkMailer struct {
	client *postmark.Client
	from   string
}

// NewPostmarkMailer sends through Postmark's transactional API.
func NewPostmarkMailer(serverToken, accountToken, from string) (Mailer, error) {
	if serverToken == "" {
		return nil, errors.New("postmark server token is required")
	}
	if from == "" {
		return nil, errors.New("sender address is required")
	}

	return &postmarkMailer{
		client: postmark.NewClient(serverToken, accountToken),
		from:   from,
	}, nil
}

func (m *postmarkMailer) SendOTP(ctx context.Context, otp *entity.OTP) error {
	subject, body := otpMessage(otp)

	resp, err := m.client.SendEmail(ctx, postmark.Email{
		From:     m.from,
		To:       otp.Email,
		Subject:  subject,
		Tag:      string(otp.Type),
		TextBody: body,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}

// LogMailer writes the code to the log instead of sending it. Used when no
// Postmark token is configured.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log.With(zap.String("mailer", "log"))}
}

func (m *LogMailer) SendOTP(_ context.Context, otp *entity.OTP) error {
	m.log.Info("OTP generated",
		zap.String("email", otp.Email),
		zap.String("otp_code", otp.Code),
		zap.String("otp_type", string(otp.Type)),
		zap.Time("expires_at", otp.ExpiresAt),
	)
	return nil
}

func otpMessage(otp *entity.OTP) (subject, body string) {
	minutes := int(time.Until(otp.ExpiresAt).Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	expiry := fmt.Sprintf("%d minutes", minutes)
	if minutes == 1 {
		expiry = "1 minute"
	}

	switch otp.Type {
	case entity.OTPTypePasswordReset:
		subject = "Reset your password"
		body = fmt.Sprintf("Your password reset code is %s. It expires in %s.\n\nIf you did not ask to reset your password, you can ignore this email.", otp.Code, expiry)
	default:
		subject = "Verify your email address"
		body = fmt.Sprintf("Your verification code is %s. It expires in %s.", otp.Code, expiry)
	}
	return subject, body
}

package adaptor

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuthService) SendOTP(ctx context.Context, req *request.SendOTPRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func postJSON(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_NormalizesEmail(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, mock.MatchedBy(func(r *request.RegisterRequest) bool {
			return r.Email == "jane@example.com"
		})).Return(&response.AuthResponse{Email: "jane@example.com"}, nil).Once()

		h := NewAuthHandler(svc, zap.NewNop())
		rec := postJSON(h.Register, `{"username":"jane","email":" Jane@Example.com ","password":"secret123"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("send otp", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("SendOTP", mock.Anything, mock.MatchedBy(func(r *request.SendOTPRequest) bool {
			return r.Email == "jane@example.com"
		})).Return(nil).Once()

		h := NewAuthHandler(svc, zap.NewNop())
		rec := postJSON(h.SendOTP, `{"email":"  JANE@example.com","type":"password_reset"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("verify email", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("VerifyEmail", mock.Anything, mock.MatchedBy(func(r *request.VerifyEmailRequest) bool {
			return r.Email == "jane@example.com" && r.OTP == "123456"
		})).Return(nil).Once()

		h := NewAuthHandler(svc, zap.NewNop())
		rec := postJSON(h.VerifyEmail, `{"email":"Jane@Example.COM ","otp":" 123456 "}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("reset password", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("ResetPassword", mock.Anything, mock.MatchedBy(func(r *request.ResetPasswordRequest) bool {
			return r.Email == "jane@example.com"
		})).Return(nil).Once()

		h := NewAuthHandler(svc, zap.NewNop())
		rec := postJSON(h.ResetPassword, `{"email":" jane@EXAMPLE.com","otp":"654321","new_password":"brand-new"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestAuthHandler_RejectsInvalidEmailAfterTrim(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, zap.NewNop())

	rec := postJSON(h.Register, `{"username":"jane","email":"   ","password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

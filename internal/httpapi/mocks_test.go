package httpapi

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taskhive/accounts/internal/account"
	"github.com/taskhive/accounts/internal/auth"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params auth.RegisterParams) (*auth.RegisterResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.RegisterResult), args.Error(1)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, rawToken string) (*account.Account, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, params auth.LoginParams) (*auth.Session, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) ResendVerification(ctx context.Context, params auth.ResendParams) (*auth.ResendResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.ResendResult), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, params auth.ForgotParams) (*auth.ForgotResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.ForgotResult), args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) (*account.Account, error) {
	args := m.Called(ctx, rawToken, newPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) (*account.Account, error) {
	args := m.Called(ctx, accountID, oldPassword, newPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, accessToken string) (*account.Account, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAuthService) GetProfile(ctx context.Context, accountID string) (*account.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, accountID string, params auth.UpdateProfileParams) (*account.Account, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

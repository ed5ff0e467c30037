package mocks

import (
	"context"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// MockAccountService implements domain.AccountService for handler tests
type MockAccountService struct {
	RegisterFunc       func(ctx context.Context, name, email, password string) (string, error)
	ActivateFunc       func(ctx context.Context, activationToken, activationCode string) error
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, userID uint) error
	RefreshFunc        func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	CurrentUserFunc    func(ctx context.Context, userID uint) (*domain.User, error)
	SocialAuthFunc     func(ctx context.Context, email, name, avatarURL string) (*domain.AuthResult, error)
	UpdateInfoFunc     func(ctx context.Context, userID uint, name string) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, userID uint, oldPassword, newPassword string) (*domain.User, error)
	UpdateAvatarFunc   func(ctx context.Context, userID uint, avatarData string) (*domain.User, error)
}

// NewMockAccountService creates a new MockAccountService
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) Register(ctx context.Context, name, email, password string) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return "activation-token", nil
}

func (m *MockAccountService) Activate(ctx context.Context, activationToken, activationCode string) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, activationToken, activationCode)
	}
	return nil
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAccountService) Logout(ctx context.Context, userID uint) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

func (m *MockAccountService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return nil, domain.ErrRefreshInvalid
}

func (m *MockAccountService) CurrentUser(ctx context.Context, userID uint) (*domain.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *MockAccountService) SocialAuth(ctx context.Context, email, name, avatarURL string) (*domain.AuthResult, error) {
	if m.SocialAuthFunc != nil {
		return m.SocialAuthFunc(ctx, email, name, avatarURL)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) UpdateInfo(ctx context.Context, userID uint, name string) (*domain.User, error) {
	if m.UpdateInfoFunc != nil {
		return m.UpdateInfoFunc(ctx, userID, name)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (*domain.User, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, oldPassword, newPassword)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) UpdateAvatar(ctx context.Context, userID uint, avatarData string) (*domain.User, error) {
	if m.UpdateAvatarFunc != nil {
		return m.UpdateAvatarFunc(ctx, userID, avatarData)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*MockAccountService)(nil)

package mocks

import (
	"fmt"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// MockTokenService implements domain.TokenService for testing. Default
// tokens are readable strings with a counter so consecutive issuance
// always produces distinct tokens (rotation assertions depend on this).
type MockTokenService struct {
	GenerateActivationTokenFunc func(user *domain.PendingUser) (string, string, error)
	VerifyActivationTokenFunc   func(token string) (*domain.ActivationClaims, error)
	GenerateAccessTokenFunc     func(userID uint) (string, error)
	GenerateRefreshTokenFunc    func(userID uint) (string, error)
	ValidateAccessTokenFunc     func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc    func(token string) (*domain.TokenClaims, error)

	counter int
}

// NewMockTokenService creates a new MockTokenService
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateActivationToken issues an activation token and code
func (m *MockTokenService) GenerateActivationToken(user *domain.PendingUser) (string, string, error) {
	if m.GenerateActivationTokenFunc != nil {
		return m.GenerateActivationTokenFunc(user)
	}
	m.counter++
	return fmt.Sprintf("activation-token-%d", m.counter), "1234", nil
}

// VerifyActivationToken decodes an activation token
func (m *MockTokenService) VerifyActivationToken(token string) (*domain.ActivationClaims, error) {
	if m.VerifyActivationTokenFunc != nil {
		return m.VerifyActivationTokenFunc(token)
	}
	return nil, domain.ErrActivationTokenInvalid
}

// GenerateAccessToken issues an access token
func (m *MockTokenService) GenerateAccessToken(userID uint) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID)
	}
	m.counter++
	return fmt.Sprintf("access-token-%d-%d", userID, m.counter), nil
}

// GenerateRefreshToken issues a refresh token
func (m *MockTokenService) GenerateRefreshToken(userID uint) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(userID)
	}
	m.counter++
	return fmt.Sprintf("refresh-token-%d-%d", userID, m.counter), nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// ValidateRefreshToken validates a refresh token
func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)

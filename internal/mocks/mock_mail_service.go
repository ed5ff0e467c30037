package mocks

import (
	"context"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// MockMailService implements domain.MailService for testing
type MockMailService struct {
	SendActivationMailFunc func(ctx context.Context, to, name, code string) error

	SentTo    []string
	SentCodes []string
}

// NewMockMailService creates a new MockMailService
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// SendActivationMail records the delivery
func (m *MockMailService) SendActivationMail(ctx context.Context, to, name, code string) error {
	if m.SendActivationMailFunc != nil {
		return m.SendActivationMailFunc(ctx, to, name, code)
	}
	m.SentTo = append(m.SentTo, to)
	m.SentCodes = append(m.SentCodes, code)
	return nil
}

// Compile-time interface compliance verification
var _ domain.MailService = (*MockMailService)(nil)

package mocks

import (
	"context"
	"fmt"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// MockMediaService implements domain.MediaService for testing
type MockMediaService struct {
	UploadFunc  func(ctx context.Context, data string) (*domain.Avatar, error)
	DestroyFunc func(ctx context.Context, publicID string) error

	Uploads   int
	Destroyed []string
}

// NewMockMediaService creates a new MockMediaService
func NewMockMediaService() *MockMediaService {
	return &MockMediaService{}
}

// Upload stores an avatar image
func (m *MockMediaService) Upload(ctx context.Context, data string) (*domain.Avatar, error) {
	m.Uploads++
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, data)
	}
	return &domain.Avatar{
		PublicID: fmt.Sprintf("avatars/mock-%d", m.Uploads),
		URL:      fmt.Sprintf("https://cdn.example.com/avatars/mock-%d", m.Uploads),
	}, nil
}

// Destroy removes an avatar image
func (m *MockMediaService) Destroy(ctx context.Context, publicID string) error {
	m.Destroyed = append(m.Destroyed, publicID)
	if m.DestroyFunc != nil {
		return m.DestroyFunc(ctx, publicID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.MediaService = (*MockMediaService)(nil)

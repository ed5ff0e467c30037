package mocks

import (
	"context"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing.
// The default behavior is a working in-memory cache.
type MockSessionRepository struct {
	SaveFunc   func(ctx context.Context, user *domain.User) error
	FindFunc   func(ctx context.Context, userID uint) (*domain.User, error)
	DeleteFunc func(ctx context.Context, userID uint) error

	Snapshots map[uint]*domain.User
}

// NewMockSessionRepository creates a new MockSessionRepository
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{Snapshots: make(map[uint]*domain.User)}
}

// Save stores a session snapshot
func (m *MockSessionRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	copied := *user
	m.Snapshots[user.ID] = &copied
	return nil
}

// Find loads a session snapshot
func (m *MockSessionRepository) Find(ctx context.Context, userID uint) (*domain.User, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, userID)
	}
	user, ok := m.Snapshots[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return user, nil
}

// Delete removes a session snapshot
func (m *MockSessionRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	delete(m.Snapshots, userID)
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionRepository = (*MockSessionRepository)(nil)

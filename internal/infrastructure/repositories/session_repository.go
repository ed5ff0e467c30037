package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using Redis.
// The value is the JSON user snapshot; its presence is what makes a
// session alive. PasswordHash carries no JSON tag into the snapshot, so
// the cached copy never contains credentials.
type SessionRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionRepository {
	return &SessionRepositoryImpl{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (r *SessionRepositoryImpl) key(userID uint) string {
	return fmt.Sprintf("%s%d", r.prefix, userID)
}

// Save implements domain.SessionRepository. Writes are last-writer-wins;
// concurrent profile updates for the same user can lose one snapshot.
func (r *SessionRepositoryImpl) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}
	return r.client.Set(ctx, r.key(user.ID), data, r.ttl).Err()
}

// Find implements domain.SessionRepository
func (r *SessionRepositoryImpl) Find(ctx context.Context, userID uint) (*domain.User, error) {
	data, err := r.client.Get(ctx, r.key(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session snapshot: %w", err)
	}
	return &user, nil
}

// Delete implements domain.SessionRepository. Deleting an absent key is
// not an error, so logout stays idempotent.
func (r *SessionRepositoryImpl) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, r.key(userID)).Err()
}

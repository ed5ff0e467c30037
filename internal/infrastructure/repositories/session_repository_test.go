package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

func TestSessionRepositoryImpl_Save(t *testing.T) {
	tests := []struct {
		name         string
		user         *domain.User
		ttl          time.Duration
		validateData func(t *testing.T, client *redis.Client, user *domain.User)
	}{
		{
			name: "snapshot stored under session prefix with TTL",
			user: &domain.User{
				ID:           1,
				Name:         "A",
				Email:        "a@x.com",
				PasswordHash: "$2a$10$hash",
				Role:         "user",
			},
			ttl: time.Hour,
			validateData: func(t *testing.T, client *redis.Client, user *domain.User) {
				key := "session:1"
				if client.Exists(context.Background(), key).Val() != 1 {
					t.Error("expected snapshot to exist in Redis")
				}
				if ttl := client.TTL(context.Background(), key).Val(); ttl <= 0 {
					t.Error("expected TTL to be set on session key")
				}
			},
		},
		{
			name: "snapshot never contains the password hash",
			user: &domain.User{
				ID:           2,
				Name:         "B",
				Email:        "b@x.com",
				PasswordHash: "$2a$10$super_secret",
				Role:         "user",
			},
			ttl: time.Hour,
			validateData: func(t *testing.T, client *redis.Client, user *domain.User) {
				raw := client.Get(context.Background(), "session:2").Val()
				if strings.Contains(raw, "super_secret") || strings.Contains(raw, "password") {
					t.Errorf("snapshot leaked credentials: %s", raw)
				}
			},
		},
		{
			name: "overwrite is last-writer-wins",
			user: &domain.User{
				ID:    3,
				Name:  "old name",
				Email: "c@x.com",
				Role:  "user",
			},
			ttl: time.Hour,
			validateData: func(t *testing.T, client *redis.Client, user *domain.User) {
				repo := NewSessionRepository(client, time.Hour)
				updated := *user
				updated.Name = "new name"
				if err := repo.Save(context.Background(), &updated); err != nil {
					t.Fatalf("overwrite: %v", err)
				}
				got, err := repo.Find(context.Background(), user.ID)
				if err != nil {
					t.Fatalf("find: %v", err)
				}
				if got.Name != "new name" {
					t.Errorf("expected overwritten snapshot, got name %q", got.Name)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestRedis(t)
			repo := NewSessionRepository(client, tt.ttl)

			if err := repo.Save(context.Background(), tt.user); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tt.validateData(t, client, tt.user)
		})
	}
}

func TestSessionRepositoryImpl_Find(t *testing.T) {
	tests := []struct {
		name          string
		setupData     func(repo domain.SessionRepository)
		userID        uint
		expectedError error
		expectedName  string
	}{
		{
			name: "existing snapshot",
			setupData: func(repo domain.SessionRepository) {
				repo.Save(context.Background(), &domain.User{ID: 1, Name: "A", Email: "a@x.com", Role: "user"})
			},
			userID:       1,
			expectedName: "A",
		},
		{
			name:          "missing snapshot",
			setupData:     func(repo domain.SessionRepository) {},
			userID:        99,
			expectedError: domain.ErrSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestRedis(t)
			repo := NewSessionRepository(client, time.Hour)
			tt.setupData(repo)

			user, err := repo.Find(context.Background(), tt.userID)

			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Name != tt.expectedName {
				t.Errorf("expected name %q, got %q", tt.expectedName, user.Name)
			}
			if user.PasswordHash != "" {
				t.Error("cached snapshot must not carry a password hash")
			}
		})
	}
}

func TestSessionRepositoryImpl_Delete(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	user := &domain.User{ID: 5, Name: "E", Email: "e@x.com", Role: "user"}
	if err := repo.Save(ctx, user); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Find(ctx, user.ID); err != domain.ErrSessionNotFound {
		t.Errorf("expected snapshot gone, got %v", err)
	}

	// Idempotent: deleting an absent key is not an error.
	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Errorf("second delete must succeed, got %v", err)
	}
	if err := repo.Delete(ctx, 12345); err != nil {
		t.Errorf("deleting a never-written key must succeed, got %v", err)
	}
}

func TestSessionRepositoryImpl_SnapshotExpires(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewSessionRepository(client, time.Minute)
	ctx := context.Background()

	if err := repo.Save(ctx, &domain.User{ID: 9, Name: "I", Email: "i@x.com", Role: "user"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := repo.Find(ctx, 9); err != domain.ErrSessionNotFound {
		t.Errorf("expected expired snapshot to be gone, got %v", err)
	}
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/infrastructure/auth"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/infrastructure/repositories"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/mocks"
)

// newLifecycleService wires the account service against real
// infrastructure: sqlite credential store, miniredis session cache and
// the actual JWT/bcrypt implementations. Mail and media stay mocked.
func newLifecycleService(t *testing.T) (domain.AccountService, *mocks.MockMailService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	tokenSvc := auth.NewJWTService("act-secret", "acc-secret", "ref-secret", "accountsvc-test",
		5*time.Minute, 5*time.Minute, 72*time.Hour)
	mailSvc := mocks.NewMockMailService()

	svc := NewAccountService(
		repositories.NewUserRepository(db),
		repositories.NewSessionRepository(client, 72*time.Hour),
		auth.NewPasswordService(),
		tokenSvc,
		mailSvc,
		mocks.NewMockMediaService(),
	)
	return svc, mailSvc
}

func TestAccountLifecycle(t *testing.T) {
	svc, mailSvc := newLifecycleService(t)
	ctx := context.Background()

	// Register: activation token out, code delivered by mail, no user yet.
	activationToken, err := svc.Register(ctx, "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if activationToken == "" {
		t.Fatal("expected activation token")
	}
	if len(mailSvc.SentCodes) != 1 {
		t.Fatalf("expected one activation mail, got %d", len(mailSvc.SentCodes))
	}
	code := mailSvc.SentCodes[0]

	if _, err := svc.Login(ctx, "a@x.com", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("login before activation must fail with ErrInvalidCredentials, got %v", err)
	}

	// Activation with the wrong code fails.
	wrongCode := "0000"
	if wrongCode == code {
		wrongCode = "0001"
	}
	if err := svc.Activate(ctx, activationToken, wrongCode); err != domain.ErrActivationCodeMismatch {
		t.Fatalf("expected ErrActivationCodeMismatch, got %v", err)
	}

	// Activation with the mailed code creates the account.
	if err := svc.Activate(ctx, activationToken, code); err != nil {
		t.Fatalf("activate: %v", err)
	}

	// Re-activation of the same token hits the duplicate check.
	if err := svc.Activate(ctx, activationToken, code); err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists on replay, got %v", err)
	}

	// Login issues a session.
	result, err := svc.Login(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	userID := result.User.ID

	// The cached snapshot backs /me.
	me, err := svc.CurrentUser(ctx, userID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if me.PasswordHash != "" {
		t.Error("cached snapshot must not carry the password hash")
	}

	// Refresh rotates both tokens.
	refreshed, err := svc.Refresh(ctx, result.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == result.AccessToken {
		t.Error("access token must rotate on refresh")
	}
	if refreshed.RefreshToken == result.RefreshToken {
		t.Error("refresh token must rotate on refresh")
	}

	// Profile update shows up in the durable store and in /me.
	if _, err := svc.UpdateInfo(ctx, userID, "A2"); err != nil {
		t.Fatalf("update info: %v", err)
	}
	me, err = svc.CurrentUser(ctx, userID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if me.Name != "A2" {
		t.Errorf("expected updated name in snapshot, got %q", me.Name)
	}

	// Password change invalidates the old credential.
	if _, err := svc.UpdatePassword(ctx, userID, "secret1", "secret2"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if _, err := svc.Login(ctx, "a@x.com", "secret1"); err != domain.ErrInvalidCredentials {
		t.Errorf("old password must stop working, got %v", err)
	}
	if _, err := svc.Login(ctx, "a@x.com", "secret2"); err != nil {
		t.Errorf("new password must work, got %v", err)
	}

	// Logout kills the session: refresh with the pre-logout token fails.
	if err := svc.Logout(ctx, userID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(ctx, refreshed.RefreshToken); err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after logout, got %v", err)
	}
	if _, err := svc.CurrentUser(ctx, userID); err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestAccountLifecycle_SocialAuth(t *testing.T) {
	svc, _ := newLifecycleService(t)
	ctx := context.Background()

	first, err := svc.SocialAuth(ctx, "s@x.com", "S", "https://pic/s.png")
	if err != nil {
		t.Fatalf("social auth: %v", err)
	}

	second, err := svc.SocialAuth(ctx, "s@x.com", "S again", "")
	if err != nil {
		t.Fatalf("second social auth: %v", err)
	}
	if first.User.ID != second.User.ID {
		t.Errorf("same email must map to the same account: %d vs %d", first.User.ID, second.User.ID)
	}

	// Social accounts cannot change passwords: there is nothing to compare.
	if _, err := svc.UpdatePassword(ctx, first.User.ID, "old", "newpass"); err != domain.ErrInvalidUser {
		t.Errorf("expected ErrInvalidUser for social-only account, got %v", err)
	}
}

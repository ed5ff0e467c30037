package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func TestUserRepositoryImpl_CreateAndFindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$hash",
		Role:         "user",
		Courses:      []string{"course-1", "course-2"},
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected assigned id after create")
	}

	found, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.Name != "A" || found.PasswordHash != "$2a$10$hash" {
		t.Errorf("unexpected user: %+v", found)
	}
	if len(found.Courses) != 2 || found.Courses[0] != "course-1" {
		t.Errorf("courses did not survive persistence: %v", found.Courses)
	}
}

func TestUserRepositoryImpl_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{Name: "A", Email: "dup@x.com", Role: "user"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := &domain.User{Name: "B", Email: "dup@x.com", Role: "user"}
	if err := repo.Create(ctx, second); err != domain.ErrEmailExists {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserRepositoryImpl_FindByEmail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.FindByEmail(context.Background(), "missing@x.com"); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Name: "A", Email: "a@x.com", Role: "user"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.Email != "a@x.com" {
		t.Errorf("unexpected user: %+v", found)
	}

	if _, err := repo.FindByID(ctx, 9999); err != domain.ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_EmailExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Name: "A", Email: "a@x.com", Role: "user"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	exists, err := repo.EmailExists(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}

	exists, err = repo.EmailExists(ctx, "other@x.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if exists {
		t.Error("expected email to be absent")
	}
}

func TestUserRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Name: "old", Email: "a@x.com", Role: "user"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	user.Name = "new"
	user.Avatar = &domain.Avatar{PublicID: "avatars/k", URL: "https://cdn/avatars/k"}
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "new" {
		t.Errorf("expected updated name, got %q", found.Name)
	}
	if found.Avatar == nil || found.Avatar.PublicID != "avatars/k" {
		t.Errorf("avatar not persisted: %+v", found.Avatar)
	}
}

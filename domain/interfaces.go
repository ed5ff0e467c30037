package domain

import "context"

// UserRepository defines durable user record access. The store owns the
// record; every other copy of a user is derived and disposable.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
}

// SessionRepository is the session cache: a user snapshot keyed by user
// id. Its presence is the authority for "this session is alive"; flows
// must never re-derive a session from the durable store on a cache miss.
type SessionRepository interface {
	Save(ctx context.Context, user *User) error
	Find(ctx context.Context, userID uint) (*User, error)
	Delete(ctx context.Context, userID uint) error
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService issues and validates the three token categories, each
// signed with its own secret.
type TokenService interface {
	GenerateActivationToken(user *PendingUser) (token string, code string, err error)
	VerifyActivationToken(token string) (*ActivationClaims, error)
	GenerateAccessToken(userID uint) (string, error)
	GenerateRefreshToken(userID uint) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// MailService delivers the activation email carrying the 4-digit code.
type MailService interface {
	SendActivationMail(ctx context.Context, to, name, code string) error
}

// MediaService stores avatar images. Upload accepts a base64 data-URI
// payload and returns the stored reference; Destroy removes a previously
// uploaded image by its public id.
type MediaService interface {
	Upload(ctx context.Context, data string) (*Avatar, error)
	Destroy(ctx context.Context, publicID string) error
}

// AccountService is the session lifecycle controller.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (activationToken string, err error)
	Activate(ctx context.Context, activationToken, activationCode string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, userID uint) error
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	CurrentUser(ctx context.Context, userID uint) (*User, error)
	SocialAuth(ctx context.Context, email, name, avatarURL string) (*AuthResult, error)
	UpdateInfo(ctx context.Context, userID uint, name string) (*User, error)
	UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (*User, error)
	UpdateAvatar(ctx context.Context, userID uint, avatarData string) (*User, error)
}

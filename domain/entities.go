package domain

import (
	"regexp"
	"time"
)

// emailPattern rejects addresses containing '$' or a second '@' and
// requires a dotted domain part.
var emailPattern = regexp.MustCompile(`^[^$@]+@[^$@]+\.[^$@]+$`)

// IsValidEmail reports whether the address matches the account email pattern.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// MinPasswordLength is the minimum raw password length accepted at
// registration and password change.
const MinPasswordLength = 6

// DefaultRole is assigned to every account created through registration
// or social sign-in.
const DefaultRole = "user"

// Avatar is a stored profile image reference.
type Avatar struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// User represents a durable user account. PasswordHash never appears in
// serialized output; the session cache snapshot is exactly the JSON form
// of this struct.
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       *Avatar   `json:"avatar,omitempty"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"isVerified"`
	Courses      []string  `json:"courses"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PendingUser is a provisional account carried inside an activation
// token. Password is the raw value; it is hashed only when the durable
// record is created at activation.
type PendingUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ActivationClaims is the decoded payload of an activation token.
type ActivationClaims struct {
	User PendingUser
	Code string
}

// TokenClaims is the decoded payload of an access or refresh token.
type TokenClaims struct {
	UserID    uint
	IssuedAt  int64
	ExpiresAt int64
}

// AuthResult is the outcome of login, social auth and refresh.
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

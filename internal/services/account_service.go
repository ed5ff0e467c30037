package services

import (
	"context"
	"fmt"
	"log"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// AccountServiceImpl implements domain.AccountService. It orchestrates
// the credential store, the session cache, the token service and the
// external mail/media capabilities; it holds no state of its own.
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	mailSvc     domain.MailService
	mediaSvc    domain.MediaService
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	mailSvc domain.MailService,
	mediaSvc domain.MediaService,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		mailSvc:     mailSvc,
		mediaSvc:    mediaSvc,
	}
}

// Register implements domain.AccountService. No durable record is
// written here; the provisional user lives only inside the activation
// token until the code is verified.
func (s *AccountServiceImpl) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if !domain.IsValidEmail(email) {
		return "", domain.ErrInvalidEmail
	}
	if len(password) < domain.MinPasswordLength {
		return "", domain.ErrPasswordTooShort
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return "", domain.ErrEmailExists
	}

	pending := &domain.PendingUser{Name: name, Email: email, Password: password}
	token, code, err := s.tokenSvc.GenerateActivationToken(pending)
	if err != nil {
		return "", fmt.Errorf("failed to generate activation token: %w", err)
	}

	if err := s.mailSvc.SendActivationMail(ctx, email, name, code); err != nil {
		log.Printf("ACTIVATION_MAIL_FAILED: email=%s error=%v", email, err)
		return "", domain.ErrMailDelivery
	}

	return token, nil
}

// Activate implements domain.AccountService. The email uniqueness check
// runs again here because another registration may have completed since
// the token was issued.
func (s *AccountServiceImpl) Activate(ctx context.Context, activationToken, activationCode string) error {
	claims, err := s.tokenSvc.VerifyActivationToken(activationToken)
	if err != nil {
		return domain.ErrActivationTokenInvalid
	}

	if claims.Code != activationCode {
		return domain.ErrActivationCodeMismatch
	}

	exists, err := s.userRepo.EmailExists(ctx, claims.User.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return domain.ErrEmailExists
	}

	hash, err := s.passwordSvc.Hash(claims.User.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         claims.User.Name,
		Email:        claims.User.Email,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	log.Printf("ACCOUNT_ACTIVATED: user_id=%d email=%s", user.ID, user.Email)
	return nil
}

// Login implements domain.AccountService. Unknown email and wrong
// password produce the same error so responses cannot be used to
// enumerate accounts.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// Logout implements domain.AccountService. Deleting an absent session is
// fine; logout is idempotent.
func (s *AccountServiceImpl) Logout(ctx context.Context, userID uint) error {
	return s.sessionRepo.Delete(ctx, userID)
}

// Refresh implements domain.AccountService. The cache is the authority
// for session liveness: a structurally valid refresh token whose
// snapshot is gone must hard-fail, never re-derive from the durable
// store. Both tokens rotate on every refresh.
func (s *AccountServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrRefreshInvalid
	}

	user, err := s.sessionRepo.Find(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	return s.openSession(ctx, user)
}

// CurrentUser implements domain.AccountService. This is a cache-only
// read; the durable store is deliberately not consulted.
func (s *AccountServiceImpl) CurrentUser(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.sessionRepo.Find(ctx, userID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return user, nil
}

// SocialAuth implements domain.AccountService. Create-or-fetch keyed on
// an asserted email: the identity claim is trusted as-is, so the route
// must be protected by upstream provider verification.
func (s *AccountServiceImpl) SocialAuth(ctx context.Context, email, name, avatarURL string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err != domain.ErrUserNotFound {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		user = &domain.User{
			Name:  name,
			Email: email,
			Role:  domain.DefaultRole,
		}
		if avatarURL != "" {
			user.Avatar = &domain.Avatar{URL: avatarURL}
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.openSession(ctx, user)
}

// UpdateInfo implements domain.AccountService. Only the name is
// mutable; the email-change path is intentionally disabled.
func (s *AccountServiceImpl) UpdateInfo(ctx context.Context, userID uint, name string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to refresh session snapshot: %w", err)
	}
	return user, nil
}

// UpdatePassword implements domain.AccountService
func (s *AccountServiceImpl) UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) (*domain.User, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, domain.ErrMissingFields
	}
	if len(newPassword) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Social-auth accounts have no stored password to compare against.
	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidUser
	}
	if !s.passwordSvc.Verify(user.PasswordHash, oldPassword) {
		return nil, domain.ErrWrongOldPassword
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to refresh session snapshot: %w", err)
	}
	return user, nil
}

// UpdateAvatar implements domain.AccountService. A previous avatar is
// destroyed at the media store before the replacement is uploaded.
func (s *AccountServiceImpl) UpdateAvatar(ctx context.Context, userID uint, avatarData string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if avatarData != "" {
		if user.Avatar != nil && user.Avatar.PublicID != "" {
			if err := s.mediaSvc.Destroy(ctx, user.Avatar.PublicID); err != nil {
				return nil, err
			}
		}
		avatar, err := s.mediaSvc.Upload(ctx, avatarData)
		if err != nil {
			return nil, err
		}
		user.Avatar = avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to refresh session snapshot: %w", err)
	}
	return user, nil
}

// openSession issues a fresh access+refresh pair and (re)writes the
// session snapshot. Shared by login, social auth and refresh.
func (s *AccountServiceImpl) openSession(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.sessionRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save session snapshot: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/internal/http/middleware"
)

// CookieOptions controls the attributes of the token cookies.
type CookieOptions struct {
	Domain        string
	Secure        bool
	SameSite      http.SameSite
	AccessMaxAge  int
	RefreshMaxAge int
}

// AccountHandlers handles the account lifecycle HTTP surface.
type AccountHandlers struct {
	accountSvc domain.AccountService
	cookies    CookieOptions
}

// NewAccountHandlers creates new account handlers
func NewAccountHandlers(accountSvc domain.AccountService, cookies CookieOptions) *AccountHandlers {
	return &AccountHandlers{accountSvc: accountSvc, cookies: cookies}
}

// RegistrationRequest represents a registration request
type RegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ActivationRequest represents an account activation request
type ActivationRequest struct {
	ActivationToken string `json:"activation_token" binding:"required"`
	ActivationCode  string `json:"activation_code" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SocialAuthRequest represents a social sign-in request
type SocialAuthRequest struct {
	Email  string `json:"email" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

// UpdateInfoRequest represents a profile info update
type UpdateInfoRequest struct {
	Name string `json:"name"`
}

// UpdatePasswordRequest represents a password change
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdateAvatarRequest represents an avatar change
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// Register handles POST /registration
func (h *AccountHandlers) Register(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.accountSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"message":         "Please check your email: " + req.Email + " to activate your account",
		"activationToken": token,
	})
}

// Activate handles POST /activate-user
func (h *AccountHandlers) Activate(c *gin.Context) {
	var req ActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.accountSvc.Activate(c.Request.Context(), req.ActivationToken, req.ActivationCode); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Login handles POST /login
func (h *AccountHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        result.User,
		"accessToken": result.AccessToken,
	})
}

// Logout handles GET /logout
func (h *AccountHandlers) Logout(c *gin.Context) {
	h.clearTokenCookies(c)

	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondError(c, http.StatusBadRequest, domain.ErrUnauthenticated.Error())
		return
	}

	if err := h.accountSvc.Logout(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Refresh handles GET /refresh. The refresh token arrives as a cookie,
// not a body field, and both cookies rotate on success.
func (h *AccountHandlers) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		respondError(c, http.StatusBadRequest, domain.ErrRefreshInvalid.Error())
		return
	}

	result, err := h.accountSvc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"accessToken": result.AccessToken,
	})
}

// Me handles GET /me. The read is cache-only.
func (h *AccountHandlers) Me(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
		return
	}

	user, err := h.accountSvc.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// SocialAuth handles POST /social-auth
func (h *AccountHandlers) SocialAuth(c *gin.Context) {
	var req SocialAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.accountSvc.SocialAuth(c.Request.Context(), req.Email, req.Name, req.Avatar)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        result.User,
		"accessToken": result.AccessToken,
	})
}

// UpdateInfo handles PUT /update-user-info
func (h *AccountHandlers) UpdateInfo(c *gin.Context) {
	var req UpdateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
		return
	}

	user, err := h.accountSvc.UpdateInfo(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// UpdatePassword handles PUT /update-user-password
func (h *AccountHandlers) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
		return
	}

	user, err := h.accountSvc.UpdatePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// UpdateAvatar handles PUT /update-user-avatar
func (h *AccountHandlers) UpdateAvatar(c *gin.Context) {
	var req UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
		return
	}

	user, err := h.accountSvc.UpdateAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *AccountHandlers) setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, h.cookies.AccessMaxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, refreshToken, h.cookies.RefreshMaxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
}

func (h *AccountHandlers) clearTokenCookies(c *gin.Context) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", h.cookies.Domain, h.cookies.Secure, true)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondServiceError maps a domain sentinel to an HTTP status. Flow
// errors stay 400-class; gate and session desync errors are 401; only
// unexpected faults become 500.
func respondServiceError(c *gin.Context, err error) {
	switch err {
	case domain.ErrNameRequired, domain.ErrInvalidEmail, domain.ErrPasswordTooShort,
		domain.ErrEmailExists, domain.ErrMissingCredentials, domain.ErrInvalidCredentials,
		domain.ErrActivationTokenInvalid, domain.ErrActivationCodeMismatch,
		domain.ErrMissingFields, domain.ErrInvalidUser, domain.ErrWrongOldPassword,
		domain.ErrMailDelivery, domain.ErrRefreshInvalid, domain.ErrUserNotFound:
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.ErrSessionNotFound, domain.ErrUnauthenticated:
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "something went wrong")
	}
}

// ParseSameSite maps a config string to the gin cookie attribute.
func ParseSameSite(value string) http.SameSite {
	switch value {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

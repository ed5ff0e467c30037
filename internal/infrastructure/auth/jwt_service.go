package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

// JWTServiceImpl implements domain.TokenService. Each token category is
// signed with its own secret so a leaked access token can never be
// replayed as a refresh or activation token.
type JWTServiceImpl struct {
	activationSecret []byte
	accessSecret     []byte
	refreshSecret    []byte
	issuer           string
	activationTTL    time.Duration
	accessTTL        time.Duration
	refreshTTL       time.Duration
}

// NewJWTService creates a new JWT token service.
func NewJWTService(activationSecret, accessSecret, refreshSecret, issuer string, activationTTL, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		activationSecret: []byte(activationSecret),
		accessSecret:     []byte(accessSecret),
		refreshSecret:    []byte(refreshSecret),
		issuer:           issuer,
		activationTTL:    activationTTL,
		accessTTL:        accessTTL,
		refreshTTL:       refreshTTL,
	}
}

// generateJTI creates a unique JWT ID so two tokens for the same subject
// issued in the same second are still distinct.
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// generateActivationCode draws a 4-digit code uniformly from [1000, 9999].
func (j *JWTServiceImpl) generateActivationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	code := 1000 + n.Int64()
	return big.NewInt(code).String(), nil
}

// GenerateActivationToken implements domain.TokenService. The provisional
// user and the activation code travel inside the signed payload; nothing
// is persisted server-side until activation completes.
func (j *JWTServiceImpl) GenerateActivationToken(user *domain.PendingUser) (string, string, error) {
	code, err := j.generateActivationCode()
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user": map[string]interface{}{
			"name":     user.Name,
			"email":    user.Email,
			"password": user.Password,
		},
		"code": code,
		"iss":  j.issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(j.activationTTL).Unix(),
		"jti":  j.generateJTI(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.activationSecret)
	if err != nil {
		return "", "", err
	}
	return token, code, nil
}

// VerifyActivationToken implements domain.TokenService.
func (j *JWTServiceImpl) VerifyActivationToken(tokenString string) (*domain.ActivationClaims, error) {
	claims, err := j.parse(tokenString, j.activationSecret)
	if err != nil {
		return nil, domain.ErrActivationTokenInvalid
	}

	userMap, ok := claims["user"].(map[string]interface{})
	if !ok {
		return nil, domain.ErrActivationTokenInvalid
	}
	code, ok := claims["code"].(string)
	if !ok {
		return nil, domain.ErrActivationTokenInvalid
	}

	name, _ := userMap["name"].(string)
	email, _ := userMap["email"].(string)
	password, _ := userMap["password"].(string)

	return &domain.ActivationClaims{
		User: domain.PendingUser{Name: name, Email: email, Password: password},
		Code: code,
	}, nil
}

// GenerateAccessToken implements domain.TokenService.
func (j *JWTServiceImpl) GenerateAccessToken(userID uint) (string, error) {
	return j.sign(userID, j.accessSecret, j.accessTTL)
}

// GenerateRefreshToken implements domain.TokenService.
func (j *JWTServiceImpl) GenerateRefreshToken(userID uint) (string, error) {
	return j.sign(userID, j.refreshSecret, j.refreshTTL)
}

// ValidateAccessToken implements domain.TokenService.
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validate(tokenString, j.accessSecret)
}

// ValidateRefreshToken implements domain.TokenService.
func (j *JWTServiceImpl) ValidateRefreshToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validate(tokenString, j.refreshSecret)
}

func (j *JWTServiceImpl) sign(userID uint, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iss": j.issuer,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		"jti": j.generateJTI(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (j *JWTServiceImpl) validate(tokenString string, secret []byte) (*domain.TokenClaims, error) {
	claims, err := j.parse(tokenString, secret)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		UserID:    uint(userID),
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}

// parse verifies signature and expiry and returns the raw claim map.
func (j *JWTServiceImpl) parse(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	// jwt.Parse already rejects expired tokens; keep the explicit check
	// so a missing exp claim cannot slip through.
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return claims, nil
}

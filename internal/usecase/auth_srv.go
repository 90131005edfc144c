package usecase

import (
	"context"
	"fmt"
	"time"

	"remarket/internal/data/repository"
	"remarket/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claims is the JWT payload: the registered email plus standard claims
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// VerifyToken parses and validates a signed bearer token
func VerifyToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

type AuthService interface {
	IssueToken(ctx context.Context, email string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

// IssueToken signs a time-limited token for a registered email.
// Unregistered emails get ErrForbidden, never a token.
func (as *authService) IssueToken(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("email is required: %w", ErrInvalidArgument)
	}

	user, err := as.userRepo.FindByEmail(ctx, email)
	if err != nil {
		as.log.Error("Failed to look up user for token", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("issue token: %w", err)
	}
	if user == nil {
		as.log.Warn("Token requested for unregistered email", zap.String("email", email))
		return "", fmt.Errorf("email %s is not registered: %w", email, ErrForbidden)
	}

	now := time.Now()
	ttl := time.Duration(as.config.JWT.ExpiryHours) * time.Hour
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.config.JWT.Secret))
	if err != nil {
		as.log.Error("Failed to sign token", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

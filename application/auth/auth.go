package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kariago/kariago-backend/cmd/config"
	redisrepo "github.com/kariago/kariago-backend/repository/redis"
	"golang.org/x/crypto/bcrypt"
)

// AuthApp owns password secrecy, bearer tokens and one-time reset codes.
type AuthApp interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	IssueToken(userID string) (string, error)
	VerifyToken(tokenString string) (string, error)
	IssueResetCode(ctx context.Context, userID string) (string, error)
	ConsumeResetCode(ctx context.Context, userID, code string) error
}

type authAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{config: config, redisRepo: redisRepo}
}

func (s *authAppImpl) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword fails closed: any mismatch or malformed hash is false.
func (s *authAppImpl) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueToken creates a signed bearer token bound to the user id. The token is
// self-contained: verification needs only the process-wide secret.
func (s *authAppImpl) IssueToken(userID string) (string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken checks signature and expiry and returns the user id.
func (s *authAppImpl) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token missing subject")
	}

	return claims.Subject, nil
}

// IssueResetCode generates a 6-digit one-time code and stores it with the
// configured TTL. The caller delivers it out of band.
func (s *authAppImpl) IssueResetCode(ctx context.Context, userID string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)

	if err := s.redisRepo.SetResetCode(ctx, userID, code, s.config.Auth.ResetCodeTTL); err != nil {
		return "", err
	}
	return code, nil
}

// ConsumeResetCode accepts a code exactly once. Expired, absent and wrong
// codes are indistinguishable to the caller.
func (s *authAppImpl) ConsumeResetCode(ctx context.Context, userID, code string) error {
	stored, err := s.redisRepo.GetResetCode(ctx, userID)
	if err != nil {
		return fmt.Errorf("reset code lookup: %w", err)
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return fmt.Errorf("reset code mismatch")
	}
	return s.redisRepo.DeleteResetCode(ctx, userID)
}

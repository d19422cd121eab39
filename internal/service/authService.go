package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/golang-jwt/jwt/v5"
)

// AdminCookieName is the cookie carrying the signed admin session.
const AdminCookieName = "admin-auth"

// AuthResult is the outcome of checking an admin session token.
type AuthResult int

const (
	Authorized AuthResult = iota
	Missing
	Invalid
	Expired
)

func (r AuthResult) String() string {
	switch r {
	case Authorized:
		return "authorized"
	case Missing:
		return "missing"
	case Invalid:
		return "invalid"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("AuthResult(%d)", int(r))
	}
}

type adminClaims struct {
	AdminAuth string `json:"admin-auth"`
	jwt.RegisteredClaims
}

type authService struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	now      Clock
}

func NewAuthService(password, secret string, ttl time.Duration, now Clock) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		password: []byte(password),
		secret:   []byte(secret),
		ttl:      ttl,
		now:      now,
	}
}

// Login returns a signed session token when password matches.
func (s *authService) Login(password string) (string, error) {
	if len(s.password) == 0 || subtle.ConstantTimeCompare([]byte(password), s.password) != 1 {
		return "", entity.ErrInvalidPassword
	}

	issuedAt := s.now()
	claims := adminClaims{
		AdminAuth: "true",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin session: %w", err)
	}
	return token, nil
}

func (s *authService) Authorize(token string) AuthResult {
	if token == "" {
		return Missing
	}

	var claims adminClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return Expired
	}
	if err != nil || claims.AdminAuth != "true" {
		return Invalid
	}
	return Authorized
}

func (s *authService) SessionTTL() time.Duration {
	return s.ttl
}

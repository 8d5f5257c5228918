package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"smart_thermostat/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenTTL   = time.Hour
	defaultSigningKey = "change-me"
	tokenIssuer       = "smart-thermostat"
	minPasswordLen    = 8
)

// Auth failures surfaced to handlers.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidUsername    = errors.New("username must be 3-64 characters: letters, digits, '.', '_' or '-'")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", minPasswordLen)
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,64}$`)

// AuthService manages dashboard accounts and their bearer tokens.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
	hashCost   int
	now        func() time.Time
}

// NewAuthService falls back to DefaultTokenTTL and a built-in key when given zero values.
func NewAuthService(repo repository.Authorization, signingKey string, ttl time.Duration) *AuthService {
	if signingKey == "" {
		signingKey = defaultSigningKey
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{
		authRepo:   repo,
		signingKey: []byte(signingKey),
		tokenTTL:   ttl,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// normalizeUsername makes " Admin " and "admin" the same account.
func normalizeUsername(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// SignUp validates and stores a new account. A taken name is reported as
// repository.ErrUsernameTaken.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, error) {
	name := normalizeUsername(username)
	if !usernamePattern.MatchString(name) {
		return 0, ErrInvalidUsername
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return 0, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	return s.authRepo.Create(ctx, name, string(hash))
}

// GenerateToken checks credentials and issues a signed token. Unknown users
// and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(ctx, normalizeUsername(username))
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(u.ID, s.now())
}

// ParseToken verifies an HS256 token from this service and returns the user id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims,
		func(*jwt.Token) (interface{}, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}
	return id, nil
}

func (s *AuthService) issueToken(userID int, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	return token.SignedString(s.signingKey)
}

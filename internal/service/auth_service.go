package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"daytrack/internal/domain"
	"daytrack/internal/repository"
)

// ErrInvalidCredentials indicates that provided login credentials are incorrect.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService describes identity operations. Two providers implement it: a
// local one backed by the user repository with signed tokens, and a demo one
// that fabricates users and opaque tokens without any verification.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

type localAuthService struct {
	users     repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewLocalAuthService builds the repository-backed identity provider.
func NewLocalAuthService(users repository.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &localAuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *localAuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*AuthResult, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" || lastName == "" || email == "" {
		return nil, domain.InvalidInput("First name, last name, and email are required")
	}
	if password == "" {
		return nil, domain.InvalidInput("Password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return nil, domain.InvalidInput("User already exists")
		}
		return nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: sanitizeUser(user), Token: token}, nil
}

func (s *localAuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: sanitizeUser(user), Token: token}, nil
}

func (s *localAuthService) ResolveToken(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthenticated
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, sub)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	return sanitizeUser(user), nil
}

func (s *localAuthService) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

type demoAuthService struct{}

// NewDemoAuthService builds the identity provider used for local development.
// Tokens are opaque base64 strings and every valid-looking token resolves to
// the same stub user.
func NewDemoAuthService() AuthService {
	return &demoAuthService{}
}

func (s *demoAuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*AuthResult, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" || lastName == "" || email == "" {
		return nil, domain.InvalidInput("First name, last name, and email are required")
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	return &AuthResult{User: user, Token: demoToken(email)}, nil
}

func (s *demoAuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidCredentials
	}

	// No password verification on the demo path.
	user := &domain.User{
		ID:        uuid.NewString(),
		FirstName: "Demo",
		LastName:  "User",
		Email:     email,
		OrgID:     "org_456",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	return &AuthResult{User: user, Token: demoToken(email)}, nil
}

func (s *demoAuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" || token == "undefined" {
		return nil, domain.ErrUnauthenticated
	}
	return &domain.User{
		ID:        "user_123",
		FirstName: "Demo",
		LastName:  "User",
		Email:     "demo@example.com",
		OrgID:     "org_456",
	}, nil
}

func demoToken(email string) string {
	raw := fmt.Sprintf("%s|%d", email, time.Now().UnixNano())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clone := *user
	clone.PasswordHash = ""
	return &clone
}

package services

import (
	"errors"
	"fmt"
	"time"

	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong
// password alike, so callers cannot tell which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Token verification failures. The HTTP boundary reports all of them as a
// single 401, but the distinct kinds stay observable for logging and tests.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService. The signing secret is fixed for
// the lifetime of the service.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 7 * 24 * time.Hour, // Token valid for 7 days
	}
}

// Register creates a new user with a hashed password and returns a freshly
// issued token together with the stored user.
func (s *AuthService) Register(name, email, password string) (string, *models.User, error) {
	// Only a definitive not-found clears the email; any other store error
	// must not be mistaken for "email free".
	if existingUser, err := s.userRepo.GetByEmail(email); err == nil && existingUser != nil {
		return "", nil, fmt.Errorf("email %s: %w", email, repositories.ErrDuplicateEmail)
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return "", nil, fmt.Errorf("failed to check email %s: %w", email, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login authenticates a user by email and password and returns a token.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken produces a signed JWT embedding the user's ID, expiring 7 days
// after issuance.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning its claims if
// valid. Failures are classified as expired, malformed or invalid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) {
			switch {
			case vErr.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrTokenExpired
			case vErr.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrTokenMalformed
			}
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

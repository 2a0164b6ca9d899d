package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once per service so that a login for an unknown
// email performs the same bcrypt comparison as a login with a wrong password.
const dummyPassword = "go-task-keeper/dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt cost factor applied at registration.
	hashCost int

	// dummyHash is compared against when the login email is unknown.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.StructuredConfig, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := utils.HashPassword(dummyPassword, cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy password hash: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hashCost:       cfg.App.PasswordHashCost,
		dummyHash:      dummyHash,
		tokenSignKey:   cfg.Auth.Secret,
		tokenIssuer:    cfg.Auth.Issuer,
		tokenDuration:  cfg.Auth.Duration,
		now:            time.Now,
		logger:         logger,
	}, nil
}

// RegisterUser creates a new user account.
//
// Email uniqueness is checked before username uniqueness. A unique violation
// raised by the insert itself (two concurrent registrations) is reported as
// ErrUserAlreadyExists. The returned user never carries the password hash.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.RegisterUser").Logger()

	if request.Username == "" || request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Str("username", request.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if err := a.ensureFree(ctx, a.userRepository.FindUserByEmail, request.Email, ErrEmailAlreadyExists); err != nil {
		return models.User{}, err
	}
	if err := a.ensureFree(ctx, a.userRepository.FindUserByUsername, request.Username, ErrUsernameAlreadyExists); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(request.Password, a.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		log.Warn().Err(err).Msg("password exceeds the bcrypt limit")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		log.Warn().Err(err).Str("email", request.Email).Msg("user was registered concurrently")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	user.PasswordHash = ""
	return user, nil
}

// ensureFree returns conflict when find locates a user by value.
func (a *authService) ensureFree(ctx context.Context, find func(context.Context, string) (models.User, error), value string, conflict error) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return conflict
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		logger.FromContext(ctx).Err(err).Str("func", "authService.ensureFree").Msg("user uniqueness check failed")
		return fmt.Errorf("user uniqueness check failed: %w", err)
	}
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Login").Logger()

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid credentials format")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash := a.dummyHash
	if found {
		hash = user.PasswordHash
	}

	matches, err := utils.CheckPassword(hash, request.Password)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("password comparison failed")
		return models.User{}, err
	}

	if !found || !matches {
		log.Warn().Str("email", request.Email).Bool("user_found", found).Msg("login rejected")
		return models.User{}, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired; any other failure (bad signature,
// wrong issuer or algorithm, malformed input) yields ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, jwt.WithTimeFunc(a.now))
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

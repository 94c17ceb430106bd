package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/logger"
	"qa-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const stateTTL = 10 * time.Minute

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	users         repository.UserRepositoryInterface
	mailer        Mailer
	github        OAuthProvider
	validator     *validator.Validate
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	states        map[string]time.Time         // Pending OAuth states and their expiry
	tokenMutex    sync.RWMutex
	now           func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"3f1c2a9e-8d4b-4c51-9a3e-2b7f0c6d1e42"`
	Email                string `json:"email" example:"ana.garcia@example.com"`
	Role                 string `json:"role" example:"tester"`
	Provider             string `json:"provider" example:"local"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserProfile is the signed-in user as returned by the auth endpoints
type UserProfile struct {
	ID            uuid.UUID           `json:"id"`
	Email         string              `json:"email"`
	FullName      string              `json:"full_name"`
	Role          models.Role         `json:"role"`
	Provider      models.AuthProvider `json:"provider"`
	EmailVerified bool                `json:"email_verified"`
}

// TokenResponse is returned by every endpoint that signs a user in
type TokenResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type" example:"Bearer"`
	ExpiresIn    int64       `json:"expires_in" example:"3600"`
	RefreshToken string      `json:"refresh_token"`
	Profile      UserProfile `json:"profile"`
}

// RegisterRequest represents a local sign-up
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"ana.garcia@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=200" example:"Ana García"`
	Role     string `json:"role" validate:"max=50" example:"tester"`
}

// RegisterResponse represents the result of a sign-up
type RegisterResponse struct {
	Profile              UserProfile `json:"profile"`
	VerificationRequired bool        `json:"verification_required"`
}

// LoginRequest represents a local sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest carries the token from the verification mail
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthStartResponse represents the response for auth start endpoint
type AuthStartResponse struct {
	URL string `json:"url"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, mailer Mailer, validator *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	s := &AuthService{
		config:        config,
		users:         users,
		mailer:        mailer,
		validator:     validator,
		refreshTokens: make(map[string]*RefreshTokenData),
		states:        make(map[string]time.Time),
		now:           time.Now,
	}
	if config.GitHub != nil {
		s.github = NewGitHubClient(config.GitHub, config.GitHubCallbackURL())
	}
	return s, nil
}

// Register creates a local account and mails the verification link
func (s *AuthService) Register(req *RegisterRequest) (*RegisterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	user := &models.User{
		Email:         req.Email,
		FullName:      strings.TrimSpace(req.FullName),
		Role:          models.NormalizeRole(req.Role),
		IsActive:      true,
		EmailVerified: !s.config.RequireEmailVerification,
		PasswordHash:  &passwordHash,
		AuthProvider:  models.AuthProviderLocal,
	}

	var token string
	if s.config.RequireEmailVerification {
		token, err = s.generateRandomString(32)
		if err != nil {
			return nil, err
		}
		user.VerificationToken = &token
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if token != "" {
		body := fmt.Sprintf("Hola %s,\n\nConfirma tu correo en %s\n", user.FullName, s.config.VerificationURL(token))
		if err := s.mailer.Send(user.Email, "Verifica tu cuenta", body); err != nil {
			// The account exists either way; the user can ask an admin to verify it.
			logger.New().WithError(err).WithField("email", user.Email).Warn("Failed to send verification mail")
		}
	}

	return &RegisterResponse{
		Profile:              toUserProfile(user),
		VerificationRequired: token != "",
	}, nil
}

// VerifyEmail consumes a verification token
func (s *AuthService) VerifyEmail(req *VerifyEmailRequest) (*UserProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByVerificationToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidVerification
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.EmailVerified = true
	user.VerificationToken = nil
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to verify email: %w", err)
	}

	profile := toUserProfile(user)
	return &profile, nil
}

// Login checks a local password and signs the user in
func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.PasswordHash == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	if s.config.RequireEmailVerification && !user.EmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	return s.issueTokens(user)
}

// Refresh rotates a refresh token and issues a new access token
func (s *AuthService) Refresh(req *RefreshTokenRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Refresh tokens are single use: claim and remove in one step so two
	// concurrent refreshes cannot both succeed.
	tokenData, exists := s.takeRefreshToken(req.RefreshToken)
	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if s.now().After(tokenData.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	// Reload so role changes and deactivation take effect on refresh
	user, err := s.users.GetByID(tokenData.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return s.issueTokens(user)
}

// Logout invalidates a refresh token. Unknown tokens are ignored.
func (s *AuthService) Logout(refreshToken string) {
	s.revoke(refreshToken)
}

// Me returns the profile of the signed-in user
func (s *AuthService) Me(userID uuid.UUID) (*UserProfile, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	profile := toUserProfile(user)
	return &profile, nil
}

// GitHubEnabled reports whether GitHub sign-in is available
func (s *AuthService) GitHubEnabled() bool {
	return s.github != nil
}

// GitHubAuthURL starts the GitHub authorization code flow
func (s *AuthService) GitHubAuthURL() (string, error) {
	if s.github == nil {
		return "", apperrors.ErrProviderNotConfigured
	}

	state, err := s.generateRandomString(32)
	if err != nil {
		return "", err
	}

	now := s.now()
	s.tokenMutex.Lock()
	for pending, expiresAt := range s.states {
		if now.After(expiresAt) {
			delete(s.states, pending)
		}
	}
	s.states[state] = now.Add(stateTTL)
	s.tokenMutex.Unlock()

	return s.github.AuthCodeURL(state), nil
}

// GitHubCallback finishes the GitHub flow. The account is created on first sign-in
// and linked by email to an existing user when one matches.
func (s *AuthService) GitHubCallback(ctx context.Context, code, state string) (*TokenResponse, error) {
	if s.github == nil {
		return nil, apperrors.ErrProviderNotConfigured
	}
	if !s.consumeState(state) {
		return nil, apperrors.NewAuthenticationError("invalid or expired OAuth state")
	}

	profile, err := s.github.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to complete GitHub sign-in: %w", err)
	}
	if profile.Email == "" {
		return nil, apperrors.NewAuthenticationError("GitHub account has no email address")
	}

	user, err := s.upsertGitHubUser(profile)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return s.issueTokens(user)
}

func (s *AuthService) upsertGitHubUser(profile *GitHubProfile) (*models.User, error) {
	user, err := s.users.GetByExternalID(models.AuthProviderGitHub, profile.ExternalID())
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user, err = s.users.GetByEmail(profile.Email)
	switch {
	case err == nil:
		user.AuthProvider = models.AuthProviderGitHub
		user.ExternalID = profile.ExternalID()
		if profile.Verified {
			user.EmailVerified = true
			user.VerificationToken = nil
		}
		if err := s.users.Update(user); err != nil {
			return nil, fmt.Errorf("failed to link GitHub account: %w", err)
		}
		return user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &models.User{
			Email:         profile.Email,
			FullName:      profile.DisplayName(),
			Role:          models.RoleTester,
			IsActive:      true,
			EmailVerified: profile.Verified,
			AuthProvider:  models.AuthProviderGitHub,
			ExternalID:    profile.ExternalID(),
		}
		if err := s.users.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		logger.New().WithFields(map[string]interface{}{
			"email": user.Email,
			"login": profile.Login,
		}).Info("Created user on first GitHub sign-in")
		return user, nil
	default:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
}

func (s *AuthService) issueTokens(user *models.User) (*TokenResponse, error) {
	accessToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	s.tokenMutex.Lock()
	for token, data := range s.refreshTokens {
		if now.After(data.ExpiresAt) {
			delete(s.refreshTokens, token)
		}
	}
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:    user.ID,
		ExpiresAt: now.Add(s.config.RefreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.AccessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile:      toUserProfile(user),
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Role:     string(user.Role),
		Provider: string(user.AuthProvider),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if _, err := uuid.Parse(claims.UserID); err != nil {
			return nil, fmt.Errorf("invalid user id in token")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) consumeState(state string) bool {
	if state == "" {
		return false
	}
	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()

	expiresAt, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return !s.now().After(expiresAt)
}

// takeRefreshToken removes a refresh token from the store and returns its data
func (s *AuthService) takeRefreshToken(refreshToken string) (*RefreshTokenData, bool) {
	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()
	data, ok := s.refreshTokens[refreshToken]
	if ok {
		delete(s.refreshTokens, refreshToken)
	}
	return data, ok
}

func (s *AuthService) revoke(refreshToken string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// generateRandomString generates a random base64 encoded string
func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

func toUserProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          user.Role,
		Provider:      user.AuthProvider,
		EmailVerified: user.EmailVerified,
	}
}

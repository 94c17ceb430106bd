package auth

import (
	"fmt"
	"strings"
	"time"

	"qa-tracker-backend/internal/config"
)

// AuthConfig holds the authentication settings derived from the application config
type AuthConfig struct {
	JWTSecret                string
	Issuer                   string
	AccessTokenTTL           time.Duration
	RefreshTokenTTL          time.Duration
	RequireEmailVerification bool
	AppBaseURL               string
	GitHub                   *ProviderConfig
}

// ProviderConfig holds the OAuth application of an identity provider
type ProviderConfig struct {
	ClientID          string
	ClientSecret      string
	EnterpriseBaseURL string
}

// NewAuthConfig builds the auth settings from the loaded application config.
// GitHub sign-in stays disabled unless both client credentials are set.
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	authConfig := &AuthConfig{
		JWTSecret:                cfg.JWTSecret,
		Issuer:                   "qa-tracker-backend",
		AccessTokenTTL:           time.Duration(cfg.AccessTokenTTLMinutes) * time.Minute,
		RefreshTokenTTL:          time.Duration(cfg.RefreshTokenTTLHours) * time.Hour,
		RequireEmailVerification: cfg.RequireEmailVerification,
		AppBaseURL:               strings.TrimRight(cfg.AppBaseURL, "/"),
	}
	if cfg.GitHubEnabled() {
		authConfig.GitHub = &ProviderConfig{
			ClientID:          cfg.GitHubClientID,
			ClientSecret:      cfg.GitHubClientSecret,
			EnterpriseBaseURL: strings.TrimRight(cfg.GitHubEnterpriseURL, "/"),
		}
	}
	return authConfig
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("refresh token TTL must be positive")
	}
	if c.GitHub != nil {
		if c.GitHub.ClientID == "" || c.GitHub.ClientSecret == "" {
			return fmt.Errorf("GitHub client ID and secret are required")
		}
		if c.AppBaseURL == "" {
			return fmt.Errorf("app base URL is required for GitHub sign-in")
		}
	}
	return nil
}

// GitHubCallbackURL is where GitHub sends the user back after authorizing
func (c *AuthConfig) GitHubCallbackURL() string {
	return c.AppBaseURL + "/api/auth/github/callback"
}

// VerificationURL is the link mailed to new local users
func (c *AuthConfig) VerificationURL(token string) string {
	return c.AppBaseURL + "/verify-email?token=" + token
}

package auth

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubProfile is the part of a GitHub account used to sign someone in
type GitHubProfile struct {
	ID       int64
	Login    string
	Email    string
	Name     string
	Verified bool
}

// ExternalID is the stable identifier stored on the user row
func (p *GitHubProfile) ExternalID() string {
	return strconv.FormatInt(p.ID, 10)
}

// DisplayName falls back to the login when the account has no name
func (p *GitHubProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// OAuthProvider runs the authorization code flow of one identity provider
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*GitHubProfile, error)
}

// GitHubClient wraps the GitHub API client with OAuth2 support
type GitHubClient struct {
	config      *ProviderConfig
	callbackURL string
}

// NewGitHubClient creates a new GitHub OAuth client
func NewGitHubClient(config *ProviderConfig, callbackURL string) *GitHubClient {
	return &GitHubClient{config: config, callbackURL: callbackURL}
}

// AuthCodeURL returns the GitHub authorization URL carrying state
func (c *GitHubClient) AuthCodeURL(state string) string {
	return c.oauth2Config().AuthCodeURL(state)
}

// Exchange trades an authorization code for a token and loads the account profile
func (c *GitHubClient) Exchange(ctx context.Context, code string) (*GitHubProfile, error) {
	token, err := c.oauth2Config().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return c.profile(ctx, token)
}

func (c *GitHubClient) profile(ctx context.Context, token *oauth2.Token) (*GitHubProfile, error) {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	client := github.NewClient(httpClient)
	if c.config.EnterpriseBaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(c.config.EnterpriseBaseURL, c.config.EnterpriseBaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub enterprise URL: %w", err)
		}
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	profile := &GitHubProfile{
		ID:    user.GetID(),
		Login: user.GetLogin(),
		Name:  user.GetName(),
	}

	// Primary verified address first, then any verified one
	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err == nil {
		for _, email := range emails {
			if email.GetPrimary() && email.GetVerified() {
				profile.Email, profile.Verified = email.GetEmail(), true
				break
			}
		}
		if profile.Email == "" {
			for _, email := range emails {
				if email.GetVerified() {
					profile.Email, profile.Verified = email.GetEmail(), true
					break
				}
			}
		}
	}
	if profile.Email == "" {
		profile.Email = user.GetEmail()
	}

	return profile, nil
}

func (c *GitHubClient) oauth2Config() *oauth2.Config {
	endpoint := oauth2.Endpoint{
		AuthURL:  "https://github.com/login/oauth/authorize",
		TokenURL: "https://github.com/login/oauth/access_token",
	}
	if c.config.EnterpriseBaseURL != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  c.config.EnterpriseBaseURL + "/login/oauth/authorize",
			TokenURL: c.config.EnterpriseBaseURL + "/login/oauth/access_token",
		}
	}

	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  c.callbackURL,
		Scopes:       []string{"user:email", "read:user"},
		Endpoint:     endpoint,
	}
}

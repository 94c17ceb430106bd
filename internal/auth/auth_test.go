package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"qa-tracker-backend/internal/database/models"
	apperrors "qa-tracker-backend/internal/errors"
	"qa-tracker-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	sent []sentMail
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeProvider struct {
	profile *GitHubProfile
	codes   []string
}

func (p *fakeProvider) AuthCodeURL(state string) string {
	return "https://github.example.com/login/oauth/authorize?state=" + state
}

func (p *fakeProvider) Exchange(ctx context.Context, code string) (*GitHubProfile, error) {
	p.codes = append(p.codes, code)
	return p.profile, nil
}

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:                "test-secret",
		Issuer:                   "qa-tracker-backend",
		AccessTokenTTL:           time.Hour,
		RefreshTokenTTL:          24 * time.Hour,
		RequireEmailVerification: true,
		AppBaseURL:               "http://localhost:3000",
	}
}

func hashed(t *testing.T, password string) *string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	users    *mocks.MockUserRepositoryInterface
	mailer   *recordingMailer
	provider *fakeProvider
	service  *AuthService
	now      time.Time
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mailer = &recordingMailer{}
	suite.provider = &fakeProvider{}
	suite.now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	service, err := NewAuthService(testConfig(), suite.users, suite.mailer, validator.New())
	suite.Require().NoError(err)
	service.github = suite.provider
	service.now = func() time.Time { return suite.now }
	suite.service = service
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) activeUser(password string) *models.User {
	return &models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Email:         "ana.garcia@example.com",
		FullName:      "Ana García",
		Role:          models.RoleLead,
		IsActive:      true,
		EmailVerified: true,
		PasswordHash:  hashed(suite.T(), password),
		AuthProvider:  models.AuthProviderLocal,
	}
}

func (suite *AuthServiceTestSuite) TestRegisterNormalisesRoleAndMailsToken() {
	suite.users.EXPECT().GetByEmail("nuevo@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.users.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal(models.RoleAdmin, user.Role)
		suite.False(user.EmailVerified)
		suite.Require().NotNil(user.VerificationToken)
		suite.Require().NotNil(user.PasswordHash)
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("s3cretpass")))
		user.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.Register(&RegisterRequest{
		Email:    "nuevo@example.com",
		Password: "s3cretpass",
		FullName: "Nuevo Usuario",
		Role:     "SuperAdmin",
	})

	suite.Require().NoError(err)
	suite.True(resp.VerificationRequired)
	suite.Equal(models.RoleAdmin, resp.Profile.Role)
	suite.Require().Len(suite.mailer.sent, 1)
	suite.Equal("nuevo@example.com", suite.mailer.sent[0].to)
	suite.Contains(suite.mailer.sent[0].body, "http://localhost:3000/verify-email?token=")
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.users.EXPECT().GetByEmail("ana.garcia@example.com").Return(suite.activeUser("x"), nil)

	_, err := suite.service.Register(&RegisterRequest{
		Email:    "ana.garcia@example.com",
		Password: "s3cretpass",
		FullName: "Ana",
	})

	suite.ErrorIs(err, apperrors.ErrUserExists)
	suite.Empty(suite.mailer.sent)
}

func (suite *AuthServiceTestSuite) TestRegisterValidation() {
	_, err := suite.service.Register(&RegisterRequest{Email: "not-an-email", Password: "short", FullName: "A"})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *AuthServiceTestSuite) TestVerifyEmail() {
	token := "tok"
	user := suite.activeUser("x")
	user.EmailVerified = false
	user.VerificationToken = &token

	suite.users.EXPECT().GetByVerificationToken("tok").Return(user, nil)
	suite.users.EXPECT().Update(user).Return(nil)

	profile, err := suite.service.VerifyEmail(&VerifyEmailRequest{Token: "tok"})
	suite.Require().NoError(err)
	suite.True(profile.EmailVerified)
	suite.Nil(user.VerificationToken)
}

func (suite *AuthServiceTestSuite) TestVerifyEmailUnknownToken() {
	suite.users.EXPECT().GetByVerificationToken("gone").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.VerifyEmail(&VerifyEmailRequest{Token: "gone"})
	suite.ErrorIs(err, apperrors.ErrInvalidVerification)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	user := suite.activeUser("correct-horse")
	suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)

	resp, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "correct-horse"})
	suite.Require().NoError(err)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(int64(3600), resp.ExpiresIn)
	suite.NotEmpty(resp.RefreshToken)

	claims, err := suite.service.ValidateJWT(resp.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(user.ID.String(), claims.UserID)
	suite.Equal("lead", claims.Role)
	suite.Equal("local", claims.Provider)
}

func (suite *AuthServiceTestSuite) TestLoginRejections() {
	suite.Run("unknown email", func() {
		suite.users.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.service.Login(&LoginRequest{Email: "nobody@example.com", Password: "x"})
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("wrong password", func() {
		user := suite.activeUser("right")
		suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
		_, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "wrong"})
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("oauth account without password", func() {
		user := suite.activeUser("x")
		user.PasswordHash = nil
		suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
		_, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "x"})
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("inactive", func() {
		user := suite.activeUser("pw")
		user.IsActive = false
		suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
		_, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "pw"})
		suite.ErrorIs(err, apperrors.ErrUserInactive)
	})

	suite.Run("unverified", func() {
		user := suite.activeUser("pw")
		user.EmailVerified = false
		suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
		_, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "pw"})
		suite.ErrorIs(err, apperrors.ErrEmailNotVerified)
	})
}

func (suite *AuthServiceTestSuite) TestRefreshRotatesToken() {
	user := suite.activeUser("pw")
	suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
	first, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "pw"})
	suite.Require().NoError(err)

	user.Role = models.RoleAdmin
	suite.users.EXPECT().GetByID(user.ID).Return(user, nil)
	second, err := suite.service.Refresh(&RefreshTokenRequest{RefreshToken: first.RefreshToken})
	suite.Require().NoError(err)
	suite.NotEqual(first.RefreshToken, second.RefreshToken)
	suite.Equal(models.RoleAdmin, second.Profile.Role)

	// The old token is gone after rotation
	_, err = suite.service.Refresh(&RefreshTokenRequest{RefreshToken: first.RefreshToken})
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

func (suite *AuthServiceTestSuite) TestConcurrentRefreshSucceedsOnce() {
	user := suite.activeUser("pw")
	suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
	resp, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "pw"})
	suite.Require().NoError(err)

	suite.users.EXPECT().GetByID(user.ID).Return(user, nil).AnyTimes()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := suite.service.Refresh(&RefreshTokenRequest{RefreshToken: resp.RefreshToken}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, succeeded)
}

func (suite *AuthServiceTestSuite) TestAccessTokenFollowsServiceClock() {
	user := suite.activeUser("pw")
	token, err := suite.service.GenerateJWT(user)
	suite.Require().NoError(err)

	_, err = suite.service.ValidateJWT(token)
	suite.NoError(err)

	suite.now = suite.now.Add(2 * time.Hour)
	_, err = suite.service.ValidateJWT(token)
	suite.ErrorContains(err, "token is expired")
}

func (suite *AuthServiceTestSuite) TestRefreshExpired() {
	user := suite.activeUser("pw")
	suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
	resp, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "pw"})
	suite.Require().NoError(err)

	suite.now = suite.now.Add(25 * time.Hour)
	_, err = suite.service.Refresh(&RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (suite *AuthServiceTestSuite) TestLogout() {
	user := suite.activeUser("pw")
	suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
	resp, err := suite.service.Login(&LoginRequest{Email: user.Email, Password: "pw"})
	suite.Require().NoError(err)

	suite.service.Logout(resp.RefreshToken)
	_, err = suite.service.Refresh(&RefreshTokenRequest{RefreshToken: resp.RefreshToken})
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

func (suite *AuthServiceTestSuite) TestGitHubFirstSignInCreatesUser() {
	suite.provider.profile = &GitHubProfile{ID: 4242, Login: "mlopez", Email: "m.lopez@example.com", Verified: true}

	authURL, err := suite.service.GitHubAuthURL()
	suite.Require().NoError(err)
	state := strings.TrimPrefix(authURL, "https://github.example.com/login/oauth/authorize?state=")

	suite.users.EXPECT().GetByExternalID(models.AuthProviderGitHub, "4242").Return(nil, gorm.ErrRecordNotFound)
	suite.users.EXPECT().GetByEmail("m.lopez@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.users.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal("mlopez", user.FullName)
		suite.Equal(models.RoleTester, user.Role)
		suite.Equal(models.AuthProviderGitHub, user.AuthProvider)
		suite.Nil(user.PasswordHash)
		user.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.GitHubCallback(context.Background(), "the-code", state)
	suite.Require().NoError(err)
	suite.Equal([]string{"the-code"}, suite.provider.codes)
	suite.Equal(models.AuthProviderGitHub, resp.Profile.Provider)

	// States are single use
	_, err = suite.service.GitHubCallback(context.Background(), "the-code", state)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *AuthServiceTestSuite) TestGitHubLinksExistingEmail() {
	suite.provider.profile = &GitHubProfile{ID: 7, Login: "ana", Email: "ana.garcia@example.com", Verified: true}
	user := suite.activeUser("pw")

	authURL, err := suite.service.GitHubAuthURL()
	suite.Require().NoError(err)
	state := strings.TrimPrefix(authURL, "https://github.example.com/login/oauth/authorize?state=")

	suite.users.EXPECT().GetByExternalID(models.AuthProviderGitHub, "7").Return(nil, gorm.ErrRecordNotFound)
	suite.users.EXPECT().GetByEmail(user.Email).Return(user, nil)
	suite.users.EXPECT().Update(user).Return(nil)

	resp, err := suite.service.GitHubCallback(context.Background(), "c", state)
	suite.Require().NoError(err)
	suite.Equal(user.ID, resp.Profile.ID)
	suite.Equal("7", user.ExternalID)
}

func (suite *AuthServiceTestSuite) TestGitHubExpiredState() {
	authURL, err := suite.service.GitHubAuthURL()
	suite.Require().NoError(err)
	state := strings.TrimPrefix(authURL, "https://github.example.com/login/oauth/authorize?state=")

	suite.now = suite.now.Add(stateTTL + time.Second)
	_, err = suite.service.GitHubCallback(context.Background(), "c", state)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *AuthServiceTestSuite) TestGitHubDisabled() {
	suite.service.github = nil
	_, err := suite.service.GitHubAuthURL()
	suite.ErrorIs(err, apperrors.ErrProviderNotConfigured)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("github needs credentials", func(t *testing.T) {
		config := testConfig()
		config.GitHub = &ProviderConfig{ClientID: "id"}
		assert.Error(t, config.ValidateConfig())
	})

	t.Run("callback urls", func(t *testing.T) {
		config := testConfig()
		assert.Equal(t, "http://localhost:3000/api/auth/github/callback", config.GitHubCallbackURL())
		assert.Equal(t, "http://localhost:3000/verify-email?token=abc", config.VerificationURL("abc"))
	})
}

func TestGitHubClientConfig(t *testing.T) {
	client := NewGitHubClient(&ProviderConfig{
		ClientID:          "client",
		ClientSecret:      "secret",
		EnterpriseBaseURL: "https://github.corp.example.com",
	}, "http://localhost:3000/api/auth/github/callback")

	oauthConfig := client.oauth2Config()
	assert.Equal(t, "https://github.corp.example.com/login/oauth/authorize", oauthConfig.Endpoint.AuthURL)
	assert.Equal(t, []string{"user:email", "read:user"}, oauthConfig.Scopes)
	assert.Contains(t, client.AuthCodeURL("xyz"), "state=xyz")
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil, &LogMailer{}, validator.New())
	require.NoError(t, err)

	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@example.com", Role: models.RoleTester, AuthProvider: models.AuthProviderLocal}

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateJWT(user)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, "a@example.com", claims.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other", AccessTokenTTL: time.Hour, RefreshTokenTTL: time.Hour}, nil, &LogMailer{}, validator.New())
		require.NoError(t, err)
		token, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := service.GenerateJWT(user)
		service.now = time.Now
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testConfig(), nil, &LogMailer{}, validator.New())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "t@example.com", Role: models.RoleTester}
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id.String()})
	})
	router.GET("/admin", middleware.RequireAuth(), RequireRole(models.RoleAdmin, models.RoleLead), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Token " + token, http.StatusUnauthorized},
		{"garbage token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "/me", "Bearer " + token, http.StatusOK},
		{"tester on admin route", "/admin", "Bearer " + token, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("user id reaches handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, user.ID.String(), body["id"])
	})
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testConfig(), nil, &LogMailer{}, validator.New())
	require.NoError(t, err)
	handler := NewAuthHandler(service)

	router := gin.New()
	router.POST("/login", handler.Login)
	router.POST("/refresh", handler.Refresh)
	router.GET("/github/start", handler.GitHubStart)
	router.GET("/github/callback", handler.GitHubCallback)

	t.Run("malformed login body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown refresh token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/refresh", strings.NewReader(`{"refresh_token":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("github not configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/github/start", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("callback requires code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/github/callback?state=s", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

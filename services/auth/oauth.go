package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"aide/config"
	"aide/models"
	"aide/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendarapi "google.golang.org/api/calendar/v3"
)

const sessionDuration = 24 * time.Hour

// OAuthConfig builds the Google OAuth2 config from app configuration.
// Calendar access is requested up front so the assistant can read and
// write events with the same grant.
func OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.GoogleRedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			calendarapi.CalendarScope,
		},
		Endpoint: google.Endpoint,
	}
}

// LoginURL stores a one-time state in Redis and returns the consent URL.
func (s *DefaultAuthService) LoginURL(ctx context.Context) (string, error) {
	state := uuid.New().String()
	cache := utils.GetAuthCacheClient()
	if err := cache.Set(ctx, utils.OAuthStatePrefix+state, "pending", utils.OAuthStateTTL).Err(); err != nil {
		return "", fmt.Errorf("store oauth state: %w", err)
	}
	// AccessTypeOffline plus forced consent guarantees a refresh token.
	url := OAuthConfig().AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return url, nil
}

// HandleCallback validates the state, exchanges the code for tokens,
// persists them and issues a session JWT.
func (s *DefaultAuthService) HandleCallback(ctx context.Context, state, code string) (string, *models.SessionUser, error) {
	logger := utils.GetLogger()
	cache := utils.GetAuthCacheClient()

	key := utils.OAuthStatePrefix + state
	if err := cache.Get(ctx, key).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil, errors.New("unknown or expired oauth state")
		}
		return "", nil, fmt.Errorf("check oauth state: %w", err)
	}
	cache.Del(ctx, key)

	conf := OAuthConfig()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("exchange oauth code: %w", err)
	}

	user, err := fetchUserInfo(ctx, conf, token)
	if err != nil {
		return "", nil, err
	}

	record := models.TokenRecord{
		UserEmail:    user.Email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
		Name:         user.Name,
	}
	if record.RefreshToken == "" {
		// Google omits the refresh token on repeat consent; keep the old one.
		if existing, err := s.Tokens.GetByEmail(ctx, user.Email); err == nil {
			record.RefreshToken = existing.RefreshToken
		}
	}
	if err := s.Tokens.Upsert(ctx, record); err != nil {
		return "", nil, fmt.Errorf("persist google tokens: %w", err)
	}

	sessionToken, err := utils.GenerateToken(user.Email, user.Name, sessionDuration)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}
	if err := cache.Set(ctx, utils.AuthCachePrefix+utils.HashToken(sessionToken), user.Email, utils.AuthCacheTTL).Err(); err != nil {
		logger.Warn("Failed to cache session token", zap.Error(err))
	}

	logger.Info("User signed in", zap.String("email", user.Email))
	return sessionToken, user, nil
}

// Logout drops the cached session entry for a token. The JWT itself is
// short-lived and left to expire.
func (s *DefaultAuthService) Logout(ctx context.Context, sessionToken string) error {
	cache := utils.GetAuthCacheClient()
	return cache.Del(ctx, utils.AuthCachePrefix+utils.HashToken(sessionToken)).Err()
}

func fetchUserInfo(ctx context.Context, conf *oauth2.Config, token *oauth2.Token) (*models.SessionUser, error) {
	client := conf.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if payload.Email == "" {
		return nil, errors.New("userinfo response missing email")
	}
	return &models.SessionUser{
		Email: strings.ToLower(payload.Email),
		Name:  payload.Name,
	}, nil
}

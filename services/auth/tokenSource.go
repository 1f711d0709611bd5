package auth

import (
	"context"
	"fmt"

	"aide/models"
	"aide/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// TokenSource returns a token source backed by the user's stored refresh
// token. Refreshed access tokens are written back so background jobs can
// reuse them without another interactive login.
func (s *DefaultAuthService) TokenSource(ctx context.Context, email string) (oauth2.TokenSource, error) {
	record, err := s.Tokens.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load tokens for %s: %w", email, err)
	}

	stored := &oauth2.Token{
		AccessToken:  record.AccessToken,
		RefreshToken: record.RefreshToken,
		TokenType:    record.TokenType,
		Expiry:       record.Expiry,
	}
	return &persistingTokenSource{
		svc:     s,
		email:   email,
		name:    record.Name,
		last:    stored.AccessToken,
		refresh: stored.RefreshToken,
		src:     OAuthConfig().TokenSource(ctx, stored),
	}, nil
}

type persistingTokenSource struct {
	svc     *DefaultAuthService
	email   string
	name    string
	last    string
	refresh string
	src     oauth2.TokenSource
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := p.src.Token()
	if err != nil {
		return nil, err
	}
	if token.AccessToken != p.last {
		p.last = token.AccessToken
		if token.RefreshToken == "" {
			token.RefreshToken = p.refresh
		} else {
			p.refresh = token.RefreshToken
		}
		record := models.TokenRecord{
			UserEmail:    p.email,
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			TokenType:    token.TokenType,
			Expiry:       token.Expiry,
			Name:         p.name,
		}
		if err := p.svc.Tokens.Upsert(context.Background(), record); err != nil {
			utils.GetLogger().Warn("Failed to persist refreshed token",
				zap.String("email", p.email), zap.Error(err))
		}
	}
	return token, nil
}

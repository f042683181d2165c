package google

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// TokenProvider supplies OAuth tokens for the Calendar client, so the client
// can be wired to stored tokens in production and to fakes in tests.
type TokenProvider interface {
	GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error)
	HasTokenForAccount(account string) bool
}

// FileTokenProvider reads the tokens persisted by the auth command. All
// tokens live in one directory, one file per account.
type FileTokenProvider struct {
	dir string
}

// NewFileTokenProvider creates a provider over the default token directory
// in the user cache.
func NewFileTokenProvider() *FileTokenProvider {
	return NewFileTokenProviderAt(filepath.Join(userCacheDir(), "meetingbar"))
}

// NewFileTokenProviderAt creates a provider reading tokens below dir.
func NewFileTokenProviderAt(dir string) *FileTokenProvider {
	return &FileTokenProvider{dir: dir}
}

// GetTokenForAccount loads the stored token for the account and refreshes it
// through the OAuth config, so callers always receive a usable token.
func (p *FileTokenProvider) GetTokenForAccount(ctx context.Context, account string) (*oauth2.Token, error) {
	slurp, err := os.ReadFile(p.tokenPath(account))
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	conf := GetOAuthConfig()
	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("cached token is invalid: %w", err)
	}

	return token, nil
}

// HasTokenForAccount checks if a token file exists for the account.
func (p *FileTokenProvider) HasTokenForAccount(account string) bool {
	if account == "" {
		return false
	}
	_, err := os.Stat(p.tokenPath(account))
	return err == nil
}

func (p *FileTokenProvider) tokenPath(account string) string {
	name := "google.token"
	if account != "" && account != "default" {
		name = fmt.Sprintf("google-%s.token", account)
	}
	return filepath.Join(p.dir, name)
}

package nicru

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/oauth2"
)

// DefaultScope grants access to the dns-master API.
const DefaultScope = ".+:/dns-master/.+"

// defaultOffline is the token lifetime in seconds requested from the
// authorization server.
const defaultOffline = 3600

// Password is the credential set for the OAuth2 password grant the API
// uses. AppLogin and AppPassword identify the registered application,
// Username and Password the account. Applications are registered at
// https://www.nic.ru/manager/oauth.cgi?step=oauth.app_register.
type Password struct {
	AppLogin    string
	AppPassword string
	Username    string
	Password    string
	// Scope defaults to DefaultScope.
	Scope string
	// Offline is the requested token lifetime in seconds, 3600 when zero.
	Offline int
}

func (p Password) validate() error {
	if p.AppLogin == "" || p.AppPassword == "" {
		return errors.New("nicru: missing OAuth application credentials")
	}
	if p.Username == "" || p.Password == "" {
		return errors.New("nicru: missing account credentials for the OAuth token request")
	}
	return nil
}

func oauthConfig(baseURL string, p Password) *oauth2.Config {
	offline := p.Offline
	if offline == 0 {
		offline = defaultOffline
	}
	scope := p.Scope
	if scope == "" {
		scope = DefaultScope
	}
	return &oauth2.Config{
		ClientID:     p.AppLogin,
		ClientSecret: p.AppPassword,
		Scopes:       []string{scope},
		Endpoint: oauth2.Endpoint{
			// The non-standard offline parameter rides on the token URL.
			TokenURL:  strings.TrimRight(baseURL, "/") + fmt.Sprintf("/oauth/token?offline=%d", offline),
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// passwordSource obtains a fresh token through the password grant each
// time the current one runs out. Expiry is always evaluated against the
// clock at call time.
type passwordSource struct {
	ctx context.Context
	cfg *oauth2.Config
	p   Password
}

func (s *passwordSource) Token() (*oauth2.Token, error) {
	tok, err := s.cfg.PasswordCredentialsToken(s.ctx, s.p.Username, s.p.Password)
	if err != nil {
		return nil, fmt.Errorf("nicru: fetch token: %w", err)
	}
	return tok, nil
}

// notifySource reports each replacement token to the callback exactly
// once, so the caller can persist it.
type notifySource struct {
	src oauth2.TokenSource
	fn  func(*oauth2.Token)

	mu   sync.Mutex
	last string
}

func (s *notifySource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	changed := tok.AccessToken != s.last
	s.last = tok.AccessToken
	s.mu.Unlock()
	if changed && s.fn != nil {
		s.fn(tok)
	}
	return tok, nil
}

// NewTokenSource returns a token source for the given credentials. A
// non-nil tok is reused until it expires, then a fresh password grant is
// performed. onToken, when non-nil, is called for every token the caller
// has not seen yet.
func NewTokenSource(ctx context.Context, baseURL string, p Password, tok *oauth2.Token, onToken func(*oauth2.Token)) (oauth2.TokenSource, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	src := &notifySource{
		src: oauth2.ReuseTokenSource(tok, &passwordSource{ctx: ctx, cfg: oauthConfig(baseURL, p), p: p}),
		fn:  onToken,
	}
	if tok != nil {
		src.last = tok.AccessToken
	}
	return src, nil
}

// NewOAuthClient returns an HTTP client that signs every request with a
// bearer token from NewTokenSource. It is the usual Doer for New.
func NewOAuthClient(ctx context.Context, baseURL string, p Password, tok *oauth2.Token, onToken func(*oauth2.Token)) (*http.Client, error) {
	src, err := NewTokenSource(ctx, baseURL, p, tok, onToken)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, src), nil
}

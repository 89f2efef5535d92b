package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/harryviennot/cuisto-admin/internal/domain/model"
)

// ErrInvalidCredentials is returned when the provider rejects a sign-in.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Client talks to a GoTrue-compatible identity provider. The dashboard only
// consumes sessions; all token issuance and revocation stays on the provider.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

func NewClient(baseURL, anonKey string, timeout time.Duration) (*Client, error) {
	trimmedURL := strings.TrimSpace(baseURL)
	if trimmedURL == "" {
		return nil, errors.New("identity provider url is empty")
	}
	parsed, err := url.Parse(trimmedURL)
	if err != nil {
		return nil, fmt.Errorf("parse identity provider url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid identity provider url: %s", trimmedURL)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(trimmedURL, "/"),
		anonKey:    strings.TrimSpace(anonKey),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"msg"`
}

// SignIn performs the password grant and returns the issued session.
func (c *Client) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	body := map[string]string{
		"email":    strings.TrimSpace(email),
		"password": password,
	}
	return c.tokenRequest(ctx, "password", body)
}

// Refresh exchanges a refresh token for a fresh session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (model.Session, error) {
	body := map[string]string{
		"refresh_token": strings.TrimSpace(refreshToken),
	}
	return c.tokenRequest(ctx, "refresh_token", body)
}

// SignOut revokes the session on the provider. A failed revocation is not
// fatal for the caller; the local session is discarded either way.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("create logout request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute logout request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logout rejected: status=%d", resp.StatusCode)
	}
	return nil
}

func (c *Client) tokenRequest(ctx context.Context, grantType string, body map[string]string) (model.Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return model.Session{}, fmt.Errorf("marshal token request: %w", err)
	}

	endpoint := c.baseURL + "/auth/v1/token?grant_type=" + url.QueryEscape(grantType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return model.Session{}, fmt.Errorf("create token request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Session{}, fmt.Errorf("execute token request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return model.Session{}, fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return model.Session{}, ErrInvalidCredentials
		}
		var perr providerError
		if json.Unmarshal(raw, &perr) == nil {
			message := firstNonEmpty(perr.ErrorDescription, perr.Message, perr.Error)
			if message != "" {
				return model.Session{}, fmt.Errorf("identity provider: %s", message)
			}
		}
		return model.Session{}, fmt.Errorf("identity provider: status=%d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.Unmarshal(raw, &token); err != nil {
		return model.Session{}, fmt.Errorf("decode token response: %w", err)
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return model.Session{}, errors.New("identity provider returned empty access token")
	}

	session := model.Session{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    firstNonEmpty(token.TokenType, "bearer"),
		UserID:       token.User.ID,
		Email:        token.User.Email,
	}
	if token.ExpiresIn > 0 {
		session.ExpiresAt = time.Now().UTC().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	// The token response user block can be absent on refresh; fall back to
	// the claims embedded in the access token.
	if session.UserID == "" || session.ExpiresAt.IsZero() {
		if claims, err := ParseClaims(session.AccessToken); err == nil {
			if session.UserID == "" {
				session.UserID = claims.Subject
			}
			if session.Email == "" {
				session.Email = claims.Email
			}
			if session.ExpiresAt.IsZero() && claims.ExpiresAt != nil {
				session.ExpiresAt = claims.ExpiresAt.Time.UTC()
			}
		}
	}

	return session, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}
}

// Claims is the subset of access-token claims the dashboard reads. The token
// signature is the provider's concern; the dashboard decodes without
// verification and lets the core API reject stale or forged tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func ParseClaims(accessToken string) (Claims, error) {
	var claims Claims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return Claims{}, fmt.Errorf("parse access token: %w", err)
	}
	return claims, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

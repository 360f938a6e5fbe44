// Package remote pulls fresher collection snapshots from the central CRM
// service when one is configured. The local store is authoritative whenever
// the remote is unreachable or serves bad data.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Client struct {
	baseURL    string
	secret     []byte
	issuer     string
	httpClient *http.Client
}

func NewClient(baseURL, secret, issuer string) *Client {
	return &Client{
		baseURL:    baseURL,
		secret:     []byte(secret),
		issuer:     issuer,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchSnapshot retrieves the raw JSON snapshot for one collection.
func (c *Client) FetchSnapshot(ctx context.Context, collection string) ([]byte, error) {
	url := fmt.Sprintf("%s/api/v1/collections/%s", c.baseURL, collection)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	token, err := c.serviceToken()
	if err != nil {
		return nil, fmt.Errorf("failed to sign service token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("remote returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// serviceToken signs a short-lived HS256 token identifying this instance to
// the remote service.
func (c *Client) serviceToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   "snapshot-sync",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

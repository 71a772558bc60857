package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TokenVerifier resolves a bearer token to a caller identity. The real
// implementation talks to the identity service; tests plug in stubs.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// IdentityClient verifies tokens against the external identity service,
// which owns login/signup and token issuance.
type IdentityClient struct {
	baseURL string
	client  *http.Client
}

func NewIdentityClient(baseURL string) *IdentityClient {
	return &IdentityClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify forwards the token to the identity service and returns the user id
// it resolves to. Any non-200 answer means the token is not valid.
func (c *IdentityClient) Verify(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users/me", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("identity service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("identity service rejected token: status %d", resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("identity service response: %w", err)
	}
	if body.ID == "" {
		return "", errors.New("identity service returned no user id")
	}
	return body.ID, nil
}

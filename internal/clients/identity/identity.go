// Package identity calls the Firebase Identity Toolkit REST API for the
// credential operations the Admin SDK does not expose: password sign-in and
// sending the verification e-mail.
package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client exposes the identity-provider operations consumed by the auth
// service.
type Client interface {
	SignInWithPassword(ctx context.Context, email, password string) (*SignInResponse, error)
	SendVerificationEmail(ctx context.Context, idToken string) error
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds an Identity Toolkit client using the project's web API key.
func NewClient(baseURL, apiKey string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient, apiKey: apiKey}
}

// DefaultBaseURL is the production Identity Toolkit endpoint.
const DefaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// SignInResponse mirrors the fields of the signInWithPassword payload the
// service forwards to the client app.
type SignInResponse struct {
	UID          string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// apiError represents an Identity Toolkit error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SignInWithPassword exchanges email/password credentials for ID and refresh
// tokens. Provider failures come back as errors carrying the provider's own
// message text (e.g. INVALID_PASSWORD, EMAIL_NOT_FOUND).
func (c *APIClient) SignInWithPassword(ctx context.Context, email, password string) (*SignInResponse, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	result := new(SignInResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(payload).
		SetResult(result).
		SetError(apiErr).
		Post("/accounts:signInWithPassword")
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("identity api error: %s", providerMessage(apiErr, resp))
	}
	return result, nil
}

// SendVerificationEmail asks the provider to deliver a verification mail to
// the identity behind idToken.
func (c *APIClient) SendVerificationEmail(ctx context.Context, idToken string) error {
	payload := map[string]any{
		"requestType": "VERIFY_EMAIL",
		"idToken":     idToken,
	}

	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(payload).
		SetError(apiErr).
		Post("/accounts:sendOobCode")
	if err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("identity api error: %s", providerMessage(apiErr, resp))
	}
	return nil
}

func providerMessage(apiErr *apiError, resp *resty.Response) string {
	if apiErr != nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return fmt.Sprintf("status=%d", resp.StatusCode())
}

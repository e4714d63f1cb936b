package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is Google's reCAPTCHA endpoint.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

var (
	// ErrMissingToken is returned when verification is enabled but no token was sent.
	ErrMissingToken = errors.New("verify: captcha token missing")
	// ErrRejected is returned when the provider says the token is not valid.
	ErrRejected = errors.New("verify: token rejected")
	// ErrLowScore is returned when the provider score is below the threshold.
	ErrLowScore = errors.New("verify: score below threshold")
	// ErrReplayed is returned when a token has already been used.
	ErrReplayed = errors.New("verify: token already used")
	// ErrUnavailable wraps transport failures and timeouts.
	ErrUnavailable = errors.New("verify: provider unavailable")
)

// Options tunes the Client.
type Options struct {
	VerifyURL  string
	Timeout    time.Duration
	MinScore   float64
	HTTPClient *http.Client
	Replay     *ReplayGuard
}

// Client calls the siteverify endpoint.
type Client struct {
	secret     string
	verifyURL  string
	timeout    time.Duration
	minScore   float64
	httpClient *http.Client
	replay     *ReplayGuard
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score,omitempty"`
	Action     string   `json:"action,omitempty"`
	Hostname   string   `json:"hostname,omitempty"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// NewClient constructs a verification client for the given secret.
func NewClient(secret string, opts Options) *Client {
	c := &Client{
		secret:     secret,
		verifyURL:  opts.VerifyURL,
		timeout:    opts.Timeout,
		minScore:   opts.MinScore,
		httpClient: opts.HTTPClient,
		replay:     opts.Replay,
	}
	if c.verifyURL == "" {
		c.verifyURL = DefaultVerifyURL
	}
	if c.timeout <= 0 {
		c.timeout = 5 * time.Second
	}
	if c.minScore <= 0 {
		c.minScore = 0.5
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Verify returns nil only when the provider accepts the token. Any transport
// failure, timeout or malformed reply counts as a rejection. The timeout
// covers the replay check and the provider call together.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.replay.Claim(ctx, token); err != nil {
		return err
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if !body.Success {
		if len(body.ErrorCodes) > 0 {
			return fmt.Errorf("%w: %s", ErrRejected, strings.Join(body.ErrorCodes, ","))
		}
		return ErrRejected
	}
	if body.Score != nil && *body.Score < c.minScore {
		return fmt.Errorf("%w: %.2f < %.2f", ErrLowScore, *body.Score, c.minScore)
	}
	return nil
}

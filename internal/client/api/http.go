package api

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

	"github.com/dmitrijs2005/erpclient/internal/common"
)

const (
	loginPath     = "login.php"
	verifyOTPPath = "verify_otp.php"
	dashboardPath = "dashboard.php"

	maxResponseBytes = 1 << 20
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// NewHTTPClient returns a client for the API rooted at baseURL. A
// non-positive timeout leaves request deadlines to the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		http:    &http.Client{},
		timeout: timeout,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, loginPath, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VerifyOTPResponse, error) {
	var resp VerifyOTPResponse
	if err := c.post(ctx, verifyOTPPath, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Dashboard sends token both in the body and as a bearer Authorization
// header; the server accepts either.
//
// Only status and msg are read from a failure response, so an expiry reply
// is recognised whatever else it carries. The full payload is decoded only
// when status is true.
func (c *HTTPClient) Dashboard(ctx context.Context, token string) (*DashboardResponse, error) {
	raw, code, err := c.send(ctx, dashboardPath, token, DashboardRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := decode(dashboardPath, code, raw, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		return &DashboardResponse{Msg: env.Msg}, nil
	}

	var resp DashboardResponse
	if err := decode(dashboardPath, code, raw, &resp); err != nil {
		return nil, err
	}
	resp.Raw = raw
	return &resp, nil
}

func (c *HTTPClient) post(ctx context.Context, path, token string, in, out any) error {
	raw, code, err := c.send(ctx, path, token, in)
	if err != nil {
		return err
	}
	return decode(path, code, raw, out)
}

// send posts in as JSON and returns the raw body with the HTTP status code.
func (c *HTTPClient) send(ctx context.Context, path, token string, in any) ([]byte, int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, 0, fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, c.mapError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, 0, c.mapError(err)
	}
	return raw, resp.StatusCode, nil
}

func decode(path string, code int, raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s (http %d): %v", ErrMalformedResponse, path, code, err)
	}
	return nil
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

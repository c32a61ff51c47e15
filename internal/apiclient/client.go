package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/logging"
	"backoffice/internal/metrics"

	"github.com/rs/zerolog"
)

// Client calls the commerce REST backend on behalf of the signed-in user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New constructs a client for cfg.BaseURL. A nil logger disables logging.
func New(cfg config.BackendConfig, logger *zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log := logging.Component(logger, "apiclient")
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

type tokenKey struct{}

// WithToken attaches the bearer token used by calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the token attached by WithToken.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Do sends a JSON request and decodes the JSON response into out.
// body and out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, query Params, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	raw, err := c.send(ctx, method, path, query, reader, contentType)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// DoMultipart sends form as multipart/form-data. The boundary comes from the
// multipart writer.
func (c *Client) DoMultipart(ctx context.Context, method, path string, form *Form, out any) error {
	if form == nil {
		form = NewForm()
	}
	reader, contentType, err := form.encode()
	if err != nil {
		return fmt.Errorf("encode %s %s form: %w", method, path, err)
	}

	raw, err := c.send(ctx, method, path, nil, reader, contentType)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// DoBytes returns the raw response body, used for PDF blobs.
func (c *Client) DoBytes(ctx context.Context, method, path string, query Params, body any) ([]byte, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, query, reader, contentType)
}

func (c *Client) send(ctx context.Context, method, path string, query Params, body io.Reader, contentType string) ([]byte, error) {
	endpoint := c.endpoint(path, query)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, transportError(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	c.addHeaders(ctx, req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveBackend(method, 0, time.Since(start))
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	dur := time.Since(start)
	metrics.ObserveBackend(method, resp.StatusCode, dur)
	if err != nil {
		return nil, transportError(err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", dur).
		Msg("backend request")

	if resp.StatusCode >= 300 {
		apiErr := responseError(resp.StatusCode, raw)
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("backend error response")
		return nil, apiErr
	}
	return raw, nil
}

func (c *Client) endpoint(path string, query Params) string {
	endpoint := c.baseURL + path
	if q := query.Encode(); q != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		endpoint += sep + q
	}
	return endpoint
}

func (c *Client) addHeaders(ctx context.Context, req *http.Request) {
	token := TokenFrom(ctx)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		return
	}
	req.Header.Set("Authorization", "")
}

func decode(raw []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

package vaultapi

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	DefaultEndpoint = "https://secure-firebase-api.vercel.app/api/get-session"
	// TokenSecretKey is where the optional bearer token lives in the secret store.
	TokenSecretKey = "vault/api_token"

	sessionIDParam   = "sessionId"
	maxResponseBytes = 4 << 20
	schemaURL        = "https://session-vault.dev/schemas/bundle.schema.json"
)

//go:embed bundle.schema.json
var bundleSchemaJSON []byte

var compileBundleSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(bundleSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add bundle schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Client fetches encoded session bundles from the vault endpoint. It makes a
// single attempt per call and imposes no timeout beyond the caller's context.
type Client struct {
	Endpoint   string
	HTTPClient *http.Client
	// Secrets, when set, supplies the bearer token stored under TokenSecretKey.
	Secrets ports.SecretStore
	Logger  *slog.Logger
}

var _ ports.SessionSource = (*Client)(nil)

type envelope struct {
	Success bool          `json:"success"`
	Data    *envelopeData `json:"data"`
}

type envelopeData struct {
	CompressedCookies string `json:"compressedCookies"`
}

func (c *Client) FetchSession(ctx context.Context, id domain.SessionID) (domain.SessionBundle, error) {
	endpoint, err := buildEndpointURL(c.endpoint(), id)
	if err != nil {
		return domain.SessionBundle{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.SessionBundle{}, fmt.Errorf("create session request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.bearerToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.SessionBundle{}, fmt.Errorf("%w: request session: %w", domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.SessionBundle{}, fmt.Errorf("%w: read session response: %w", domain.ErrNetwork, err)
	}

	var payload envelope
	decodeErr := json.Unmarshal(body, &payload)
	if decodeErr == nil && !payload.Success {
		return domain.SessionBundle{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.SessionBundle{}, fmt.Errorf("%w: unexpected status %d", domain.ErrNetwork, resp.StatusCode)
	}
	if decodeErr != nil {
		return domain.SessionBundle{}, fmt.Errorf("%w: decode envelope: %w", domain.ErrNetwork, decodeErr)
	}
	if payload.Data == nil || payload.Data.CompressedCookies == "" {
		return domain.SessionBundle{}, fmt.Errorf("%w: envelope has no cookie data", domain.ErrDecode)
	}

	bundle, err := DecodeBundle(payload.Data.CompressedCookies)
	if err != nil {
		return domain.SessionBundle{}, err
	}

	c.logger().Debug("session fetched", "session_id", id, "url", bundle.URL, "cookies", len(bundle.Cookies))
	return bundle, nil
}

// DecodeBundle turns the base64 compressedCookies payload into a bundle.
func DecodeBundle(encoded string) (domain.SessionBundle, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return domain.SessionBundle{}, fmt.Errorf("%w: base64: %w", domain.ErrDecode, err)
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return domain.SessionBundle{}, fmt.Errorf("%w: json: %w", domain.ErrDecode, err)
	}

	schema, err := compileBundleSchema()
	if err != nil {
		return domain.SessionBundle{}, fmt.Errorf("compile bundle schema: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return domain.SessionBundle{}, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}

	var bundle domain.SessionBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return domain.SessionBundle{}, fmt.Errorf("%w: json: %w", domain.ErrDecode, err)
	}

	return bundle, nil
}

// EncodeBundle is the inverse of DecodeBundle.
func EncodeBundle(bundle domain.SessionBundle) (string, error) {
	if bundle.Cookies == nil {
		bundle.Cookies = []domain.Cookie{}
	}

	raw, err := json.Marshal(bundle)
	if err != nil {
		return "", fmt.Errorf("encode bundle: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

func (c *Client) bearerToken(ctx context.Context) string {
	if c.Secrets == nil {
		return ""
	}

	token, err := c.Secrets.Get(ctx, TokenSecretKey)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			c.logger().Debug("api token unavailable", "error", err)
		}
		return ""
	}

	return strings.TrimSpace(token)
}

func (c *Client) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return DefaultEndpoint
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func buildEndpointURL(endpoint string, id domain.SessionID) (string, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api url host is required")
	}

	query := parsed.Query()
	query.Set(sessionIDParam, string(id))
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

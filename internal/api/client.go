// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

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

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jeranaias/cookbot-tui/internal/model"
)

const (
	// DefaultBaseURL is used when no backend URL is configured.
	DefaultBaseURL = "http://127.0.0.1:5000/api"

	// DefaultTimeout bounds a single request end to end.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps how much of a response body is read.
	MaxResponseSize = 2 * 1024 * 1024
)

// Client talks to the recipe-assistant backend. It is safe for concurrent
// use; each call is a single request with no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a client for the backend at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// WithRateLimit limits outbound requests to rps per second. Zero or a
// negative value removes the limit.
func (c *Client) WithRateLimit(rps float64) *Client {
	if rps <= 0 {
		c.limiter = nil
		return c
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	return c
}

// WithLogger sets the logger used for request diagnostics.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	if logger != nil {
		c.logger = logger.Named("api")
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// OPERATIONS
// =============================================================================

// SendChatMessage sends one user message and returns the assistant's reply.
// A reply flagged as a recipe whose payload fails validation is returned as
// plain text.
func (c *Client) SendChatMessage(ctx context.Context, text, sessionID string) (*ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, inputError(OpChat, ErrEmptyMessage)
	}

	var resp chatResponse
	req := ChatRequest{Message: text, SessionID: sessionID}
	if err := c.do(ctx, OpChat, http.MethodPost, "/chat", nil, req, &resp); err != nil {
		return nil, err
	}

	reply := &ChatReply{
		Response:  resp.Response,
		SessionID: resp.SessionID,
	}
	if !resp.IsRecipe {
		return reply, nil
	}

	recipe, err := decodeRecipe(resp.RecipeData)
	if err != nil {
		c.logger.Warn("recipe payload rejected, showing reply as text",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		if strings.TrimSpace(reply.Response) == "" {
			reply.Response = MsgUnexpectedType
		}
		return reply, nil
	}

	reply.IsRecipe = true
	reply.Recipe = recipe
	return reply, nil
}

// SaveRecipe bookmarks recipe for the session.
func (c *Client) SaveRecipe(ctx context.Context, sessionID string, recipe *model.Recipe) (*SaveResult, error) {
	if sessionID == "" {
		return nil, inputError(OpSaveRecipe, ErrMissingSession)
	}
	payload := recipe.Clone()
	if err := payload.Validate(); err != nil {
		return nil, &Error{Op: OpSaveRecipe, Message: MsgSaveFailed, Err: fmt.Errorf("invalid recipe: %w", err)}
	}

	var result SaveResult
	req := SaveRecipeRequest{SessionID: sessionID, RecipeData: payload}
	if err := c.do(ctx, OpSaveRecipe, http.MethodPost, "/save_recipe", nil, req, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = MsgSaveFailed
		}
		return nil, &Error{Op: OpSaveRecipe, Status: http.StatusOK, Message: msg}
	}
	return &result, nil
}

// ListSavedRecipes returns the recipes saved under sessionID.
func (c *Client) ListSavedRecipes(ctx context.Context, sessionID string) (*SavedRecipes, error) {
	if sessionID == "" {
		return nil, inputError(OpListRecipes, ErrMissingSession)
	}

	var result SavedRecipes
	query := url.Values{"session_id": {sessionID}}
	if err := c.do(ctx, OpListRecipes, http.MethodGet, "/my_recipes", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitContact sends the contact form. A reply with success=false is not
// an error; callers show its message.
func (c *Client) SubmitContact(ctx context.Context, form ContactForm) (*ContactResult, error) {
	form = form.Trimmed()
	if err := form.Validate(); err != nil {
		return nil, inputError(OpContact, err)
	}

	var result ContactResult
	if err := c.do(ctx, OpContact, http.MethodPost, "/contact", nil, form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Health checks backend liveness.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, OpHealth, http.MethodGet, "/health", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// do issues one JSON request and decodes a 2xx body into out. Every failure
// is returned as *Error.
func (c *Client) do(ctx context.Context, op Op, method, path string, query url.Values, body, out any) error {
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return transportError(op, fmt.Errorf("rate limiter: %w", err))
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return transportError(op, fmt.Errorf("failed to encode request: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return transportError(op, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Info("request failed",
			zap.String("op", string(op)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return transportError(op, err)
	}
	defer resp.Body.Close()

	data, err := readResponse(resp)
	if err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Message: op.FallbackMessage(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := backendError(op, resp.StatusCode, data)
		c.logger.Info("backend returned error",
			zap.String("op", string(op)),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{
				Op:      op,
				Status:  resp.StatusCode,
				Message: op.FallbackMessage(),
				Err:     fmt.Errorf("failed to decode response: %w", err),
			}
		}
	}

	c.logger.Debug("request complete",
		zap.String("op", string(op)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// readResponse reads at most MaxResponseSize bytes of the body.
func readResponse(resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) > MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return data, nil
}

var errRecipeMissing = errors.New("recipe flagged but recipe_data missing")

// decodeRecipe parses and validates a recipe_data payload.
func decodeRecipe(raw json.RawMessage) (*model.Recipe, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errRecipeMissing
	}
	var recipe model.Recipe
	if err := json.Unmarshal(raw, &recipe); err != nil {
		return nil, fmt.Errorf("failed to decode recipe_data: %w", err)
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	return &recipe, nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/chatpanel/internal/errors"
	"github.com/diogo/chatpanel/internal/models"
)

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 4 << 20

// maxErrorBody caps the body kept on an APIError for diagnostics
const maxErrorBody = 4096

// GenerateContent sends prompt as the single text part of a generateContent
// request and returns the trimmed reply text.
//
// Errors:
//   - *errors.NetworkError when the request or the body read fails
//   - *errors.ParseError when the body is not a JSON document
//   - *errors.APIError when the status is not 2xx but the body is JSON
//   - errors.ErrNoContent when the reply path is absent or empty
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", apierrors.ErrEmptyPrompt
	}

	payload, err := buildPayload(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if os.IsTimeout(err) {
			err = apierrors.NewTimeoutError(scrubKey(err.Error(), c.apiKey))
		} else {
			err = errors.New(scrubKey(err.Error(), c.apiKey))
		}
		return "", apierrors.NewNetworkErrorWithEndpoint("generate content", c.Endpoint(), err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apierrors.NewNetworkErrorWithEndpoint("read response", c.Endpoint(), err)
	}

	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError(
			fmt.Sprintf("response body is not JSON (status %d)", resp.StatusCode), "")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newAPIError(resp.StatusCode, c.Endpoint(), body)
	}

	return ExtractReply(body)
}

// buildPayload marshals the request body for a single prompt
func buildPayload(prompt string) ([]byte, error) {
	return json.Marshal(models.NewGenerateContentRequest(prompt))
}

// ExtractReply walks candidates → 0 → content → parts → 0 → text one step
// at a time. A missing or null step, a non-string leaf, or a leaf that is
// blank after trimming yields errors.ErrNoContent.
func ExtractReply(body []byte) (string, error) {
	cur := gjson.ParseBytes(body)
	walked := make([]string, 0, len(replySteps))

	for _, step := range replySteps {
		walked = append(walked, step)
		cur = cur.Get(step)
		if !cur.Exists() || cur.Type == gjson.Null {
			return "", fmt.Errorf("%w: %s is absent", apierrors.ErrNoContent, strings.Join(walked, "."))
		}
	}

	if cur.Type != gjson.String {
		return "", fmt.Errorf("%w: %s is not a string", apierrors.ErrNoContent, PathReply)
	}

	text := strings.TrimSpace(cur.Str)
	if text == "" {
		return "", fmt.Errorf("%w: %s is empty", apierrors.ErrNoContent, PathReply)
	}

	return text, nil
}

// newAPIError builds an APIError from a JSON error document
func newAPIError(status int, endpoint string, body []byte) *apierrors.APIError {
	message := gjson.GetBytes(body, PathErrorMessage).String()
	if message == "" {
		message = gjson.GetBytes(body, PathErrorStatus).String()
	}
	if message == "" {
		message = "generate content failed"
	}

	raw := string(body)
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}

	return apierrors.NewAPIErrorWithBody(status, endpoint, message, raw)
}

// scrubKey removes the API key from transport error text, which usually
// embeds the full request URL.
func scrubKey(s, key string) string {
	if key == "" {
		return s
	}
	return strings.ReplaceAll(s, key, "REDACTED")
}

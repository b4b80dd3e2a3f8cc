package generation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	json "github.com/goccy/go-json"

	"globalpass/internal/providers"
	"globalpass/internal/structures"
)

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
	logger  providers.Logger
}

func NewGeminiClient(conf *structures.Config, logger providers.Logger) (TextGenerator, error) {
	if conf.Assistant.APIKey == "" {
		logger.Errorf(providers.TypeApp, "GLOBALPASS_GEMINI_API_KEY is not set, assistant unavailable")
		return nil, ErrMissingAPIKey
	}

	return &GeminiClient{
		baseURL: strings.TrimSuffix(conf.Assistant.Endpoint, "/"),
		model:   conf.Assistant.Model,
		apiKey:  conf.Assistant.APIKey,
		client:  &http.Client{Timeout: conf.Assistant.Timeout},
		logger:  logger,
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// statusError marks HTTP-level failures so the retry policy can tell
// transient server errors from permanent client errors.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("generation API error [%d]: %s", e.code, e.body)
}

func isTransient(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError || se.code == http.StatusTooManyRequests
	}
	// Network-level failures are worth one more try.
	return true
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	text, err := retry.DoWithData(
		func() (string, error) { return c.generateOnce(ctx, prompt) },
		retry.Attempts(2),
		retry.Delay(500*time.Millisecond),
		retry.Context(ctx),
		retry.RetryIf(isTransient),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		c.logger.Errorf(providers.TypeGen, "Generation failed after %s: %s", time.Since(start), err)
		return "", err
	}

	c.logger.Infof(providers.TypeGen, "Generated %d chars in %s", len(text), time.Since(start))
	return text, nil
}

func (c *GeminiClient) generateOnce(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return "", &statusError{code: resp.StatusCode, body: errResp.Error.Message}
		}
		return "", &statusError{code: resp.StatusCode, body: string(respBody)}
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation response contained no candidates")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// internal/service/analysis/client.go
package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
	"github.com/tradeyardgit/TradeYard/internal/domain/suggestion"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
)

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	maxImageSize = 10 << 20 // 10 MB
)

// Client analyzes product images through the Gemini API and returns
// structured listing suggestions.
type Client struct {
	apiKey  string
	model   string
	catalog *catalog.Catalog
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(apiKey, model string, cat *catalog.Catalog, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		catalog: cat,
		http:    &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

// Gemini REST request/response shapes, reduced to the fields we use.

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeImage downloads the image at imageURL, sends it to Gemini with a
// catalog-driven prompt, and parses the model's JSON reply into a Result.
func (c *Client) AnalyzeImage(ctx context.Context, imageURL string) (*suggestion.Result, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image URL is required", xerrors.ErrInvalidInput)
	}

	imageData, mimeType, err := c.fetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: buildPrompt(c.catalog)},
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(imageData),
				}},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf(geminiEndpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gemini returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	result, err := parseResult(gr.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		c.logger.Error("failed to parse gemini reply",
			zap.String("text", gr.Candidates[0].Content.Parts[0].Text),
			zap.Error(err),
		)
		return nil, err
	}
	return result, nil
}

func (c *Client) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}

// file: internals/ai/gemini.go
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Client untuk Google Generative Language API (generateContent).
// Dibuat sekali di bootstrap lalu di-inject ke service yang butuh —
// tidak ada state global di package ini.
type Client struct {
	apiKey      string
	model       string
	visionModel string
	baseURL     string
	httpc       *http.Client
}

type Option func(*Client)

// WithBaseURL mengganti endpoint, dipakai test untuk mengarah ke server palsu.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func WithModels(text, vision string) Option {
	return func(c *Client) {
		if text != "" {
			c.model = text
		}
		if vision != "" {
			c.visionModel = vision
		}
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:      apiKey,
		model:       "gemini-pro",
		visionModel: "gemini-1.5-pro",
		baseURL:     defaultBaseURL,
		httpc:       &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ready false kalau API key belum dikonfigurasi.
func (c *Client) Ready() bool { return strings.TrimSpace(c.apiKey) != "" }

// APIError: kegagalan dari sisi API (quota, key invalid, 5xx upstream).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("generative api error (status %d): %s", e.StatusCode, e.Message)
}

// InvalidKey mendeteksi error konfigurasi kredensial — fatal untuk batch.
func (e *APIError) InvalidKey() bool {
	return strings.Contains(e.Message, "API key not valid") ||
		strings.Contains(e.Message, "API_KEY_INVALID")
}

/* ===============================
   Wire types (subset yang dipakai)
=================================*/

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

/* ===============================
   Calls
=================================*/

// GenerateText: mode text-only (evaluasi single).
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, c.model, []part{{Text: prompt}})
}

// GenerateWithPDF: mode multimodal, PDF dilampirkan sebagai inline data
// (evaluasi batch).
func (c *Client) GenerateWithPDF(ctx context.Context, prompt string, pdf []byte) (string, error) {
	parts := []part{
		{Text: prompt},
		{InlineData: &inlineData{
			MimeType: "application/pdf",
			Data:     base64.StdEncoding.EncodeToString(pdf),
		}},
	}
	return c.generate(ctx, c.visionModel, parts)
}

func (c *Client) generate(ctx context.Context, model string, parts []part) (string, error) {
	if !c.Ready() {
		return "", &APIError{StatusCode: 0, Message: "API key not valid: key is empty"}
	}

	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: parts}}})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", &APIError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &APIError{StatusCode: resp.StatusCode, Message: "invalid response body"}
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(raw))
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if len(out.Candidates) == 0 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: "no candidates returned"}
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// Package worksheet proxies printable worksheet generation to the
// external generator service.
package worksheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mirela/brainplay/internal/logger"
)

// Request is the worksheet generation config forwarded to the generator.
type Request struct {
	Topic            string `json:"topic"`
	Subtopic         string `json:"subtopic,omitempty"`
	NumProblems      int    `json:"num_problems"`
	Difficulty       string `json:"difficulty,omitempty"`
	IncludeHints     bool   `json:"include_hints"`
	IncludeAnswerKey bool   `json:"include_answer_key"`
	GradeLevel       int    `json:"grade_level,omitempty"`
	StudentName      string `json:"student_name,omitempty"`
	WorksheetTitle   string `json:"worksheet_title,omitempty"`
}

// Client talks to the worksheet generator service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the generator at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate asks the generator for a rendered worksheet and returns the
// HTML document along with the response content type.
func (c *Client) Generate(ctx context.Context, request Request) ([]byte, string, error) {
	log := logger.FromContext(ctx).WithPrefix("worksheet").WithField("topic", request.Topic)
	url := c.baseURL + "/generate"

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, "", err
	}

	log.Debug("requesting worksheet from: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("worksheet request failed: %v", err)
		return nil, "", err
	}
	defer resp.Body.Close()

	log.Debug("worksheet response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("worksheet request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, "", fmt.Errorf("worksheet status %d: %s", resp.StatusCode, string(body))
	}

	document, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read worksheet response: %v", err)
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/html; charset=utf-8"
	}

	log.Info("worksheet generated: topic=%s, bytes=%d", request.Topic, len(document))
	return document, contentType, nil
}

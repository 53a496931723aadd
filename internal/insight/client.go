// Package insight talks to the external coaching-insight service. The
// service is a best-effort enrichment: callers treat every failure as "no
// insight this time", never as a dashboard error.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/logger"
)

type Client struct {
	url        string
	httpClient *http.Client
	log        *logger.Logger
}

func New(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Default().WithPrefix("insight"),
	}
}

// Enabled reports whether an insight endpoint is configured at all.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Payload summarizes the student's recent activity for the coaching model.
type Payload struct {
	Weekly           analytics.Totals          `json:"weekly"`
	Monthly          analytics.Totals          `json:"monthly"`
	Subjects         []analytics.SubjectTotals `json:"subjects"`
	Streak           int                       `json:"streak"`
	RecentTaskTitles []string                  `json:"recent_task_titles"`
}

type insightResp struct {
	Insight string `json:"insight"`
}

// Generate posts the summary payload and returns the free-text insight.
func (c *Client) Generate(ctx context.Context, payload Payload) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("insight")

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	log.Debug("requesting insight from %s", c.url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		log.Error("failed to create request: %v", err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to call insight service: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	log.Debug("insight response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("insight request failed: status=%d, body=%s", resp.StatusCode, string(respBody))
		return "", fmt.Errorf("insight status %d: %s", resp.StatusCode, string(respBody))
	}

	var out insightResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode insight response: %v", err)
		return "", err
	}
	return out.Insight, nil
}

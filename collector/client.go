package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.brightdata.com/datasets/v3"

// ErrNotReady means the snapshot is still being built server-side; poll
// again later.
var ErrNotReady = errors.New("snapshot not ready")

// Client talks to the BrightData datasets API: trigger a scraping run, then
// download the resulting snapshot as raw JSON.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// TriggerInput is one profile URL submitted for scraping.
type TriggerInput struct {
	URL string `json:"url"`
}

type triggerResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// Trigger submits profile URLs for scraping and returns the snapshot id to
// poll for results.
func (c *Client) Trigger(ctx context.Context, datasetID string, inputs []TriggerInput) (string, error) {
	body, err := json.Marshal(inputs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal trigger inputs: %w", err)
	}

	params := url.Values{}
	params.Set("dataset_id", datasetID)
	params.Set("include_errors", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/trigger?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to trigger dataset %s: %w", datasetID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("trigger returned status %d: %s", resp.StatusCode, string(msg))
	}

	var out triggerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode trigger response: %w", err)
	}
	return out.SnapshotID, nil
}

// Snapshot downloads a finished snapshot as a raw JSON array of profile
// records. Returns ErrNotReady while the snapshot is still building.
func (c *Client) Snapshot(ctx context.Context, snapshotID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/snapshot/"+snapshotID+"?format=json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download snapshot %s: %w", snapshotID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusAccepted {
		return nil, ErrNotReady
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("snapshot returned status %d: %s", resp.StatusCode, string(msg))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot body: %w", err)
	}

	// The ingestion loader requires a JSON array; reject anything else here
	// rather than poisoning the data directory.
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("snapshot %s is not a JSON array: %w", snapshotID, err)
	}
	return data, nil
}

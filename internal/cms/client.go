// Package cms is a read-only client for the headless content store's
// query API. It fetches structured documents (rich-text bodies included)
// for the content pages and the offline repair job.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/livingword/site/internal/model"
)

type Client struct {
	baseURL    string
	dataset    string
	token      string
	httpClient *http.Client
}

func New(baseURL, dataset, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		dataset: dataset,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Query runs a raw query against the content store and decodes the
// result array into out.
func (c *Client) Query(ctx context.Context, query string, out any) error {
	endpoint := fmt.Sprintf("%s/data/query/%s?query=%s", c.baseURL, c.dataset, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build query request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content store returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return fmt.Errorf("failed to decode content store response: %w", err)
	}

	err = json.Unmarshal(envelope.Result, out)
	if err != nil {
		return fmt.Errorf("failed to decode content store result: %w", err)
	}
	return nil
}

// Documents fetches every document of the given type, with title, slug
// and rich-text body.
func (c *Client) Documents(ctx context.Context, docType string) ([]model.Document, error) {
	query := fmt.Sprintf(`*[_type == %q]{_id, _type, title, "slug": slug.current, body}`, docType)

	var docs []model.Document
	err := c.Query(ctx, query, &docs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s documents: %w", docType, err)
	}
	return docs, nil
}

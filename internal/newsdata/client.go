package newsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://newsdata.io/api/1"

const defaultTimeout = 30 * time.Second

// Params narrows one latest-news call. Zero values mean "don't send the
// query parameter at all".
type Params struct {
	Query    string
	Language string
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Latest issues a single synchronous request for the most recent articles.
// One call, one page: no retry, no backoff, no pagination. Transport
// failures come back as plain errors; a non-success envelope status comes
// back as *APIError.
func (c *Client) Latest(ctx context.Context, params Params) (*Envelope, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	if params.Language != "" {
		q.Set("language", params.Language)
	}
	if params.Query != "" {
		q.Set("q", params.Query)
	}

	reqURL := fmt.Sprintf("%s/latest?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("newsdata request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsdata fetch: %w", err)
	}
	defer resp.Body.Close()

	// Error envelopes carry an object under "results" instead of an array,
	// so the status has to be checked before decoding the article list.
	var raw struct {
		Status       string          `json:"status"`
		TotalResults int             `json:"totalResults"`
		Results      json.RawMessage `json:"results"`
		NextPage     string          `json:"nextPage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsdata decode: %w", err)
	}

	if raw.Status != StatusSuccess {
		apiErr := &APIError{Status: raw.Status}
		var detail struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		}
		if len(raw.Results) > 0 && json.Unmarshal(raw.Results, &detail) == nil {
			apiErr.Message = detail.Message
			apiErr.Code = detail.Code
		}
		return nil, apiErr
	}

	env := &Envelope{
		Status:       raw.Status,
		TotalResults: raw.TotalResults,
		NextPage:     raw.NextPage,
	}
	if len(raw.Results) > 0 {
		if err := json.Unmarshal(raw.Results, &env.Results); err != nil {
			return nil, fmt.Errorf("newsdata decode results: %w", err)
		}
	}

	return env, nil
}

// Package api is the client for the Munro listing endpoint.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"munros/internal/config"
	"munros/internal/domain"
)

// DefaultTimeout applies when Options.Timeout is zero.
const DefaultTimeout = config.DefaultTimeout

var (
	// ErrUnexpectedStatus is wrapped by FetchError for non-2xx responses
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrMalformedBody is wrapped by FetchError when the body is not a JSON array of munros
	ErrMalformedBody = errors.New("malformed response body")
)

// Client lists munros, optionally filtered by a search string
type Client interface {
	List(ctx context.Context, search string) ([]domain.Munro, error)
}

// FetchError is the single failure kind of a listing request
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Options configures an HTTPClient
type Options struct {
	BaseURL     string
	ListPath    string
	SearchParam string
	Timeout     time.Duration
	// HTTPClient overrides the underlying client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// OptionsFromConfig builds Options from the [api] section
func OptionsFromConfig(settings config.APISettings) Options {
	return Options{
		BaseURL:     settings.BaseURL,
		ListPath:    settings.ListPath,
		SearchParam: settings.SearchParam,
		Timeout:     settings.Timeout.Duration,
	}
}

// HTTPClient talks to the listing endpoint over HTTP. Safe for concurrent use.
type HTTPClient struct {
	http     *http.Client
	endpoint *url.URL
	param    string
}

// New creates a listing client. Zero-valued options fall back to the defaults.
func New(opts Options) (*HTTPClient, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = config.DefaultBaseURL
	}
	if opts.ListPath == "" {
		opts.ListPath = config.DefaultListPath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = config.DefaultSearchParam
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	endpoint, err := url.Parse(strings.TrimRight(opts.BaseURL, "/") + "/" + strings.TrimLeft(opts.ListPath, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid listing endpoint: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("invalid listing endpoint %q: scheme must be http or https", endpoint.String())
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &HTTPClient{
		http:     httpClient,
		endpoint: endpoint,
		param:    opts.SearchParam,
	}, nil
}

// ListURL returns the request URL for a search. An empty search carries no
// filter parameter; otherwise the text is percent-encoded as the only filter.
func (c *HTTPClient) ListURL(search string) string {
	u := *c.endpoint
	if search == "" {
		return u.String()
	}

	filter := c.param + "=" + encodeComponent(search)
	if u.RawQuery != "" {
		u.RawQuery += "&" + filter
	} else {
		u.RawQuery = filter
	}
	return u.String()
}

// List performs one GET against the listing endpoint
func (c *HTTPClient) List(ctx context.Context, search string) ([]domain.Munro, error) {
	target := c.ListURL(search)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	var munros []domain.Munro
	if err := json.NewDecoder(resp.Body).Decode(&munros); err != nil {
		return nil, &FetchError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %v", ErrMalformedBody, err),
		}
	}
	if munros == nil {
		// A JSON null is an empty listing
		munros = []domain.Munro{}
	}

	return munros, nil
}

// encodeComponent percent-encodes s for use as a query value. Spaces become
// %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

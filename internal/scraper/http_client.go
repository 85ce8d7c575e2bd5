package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/DataFiling/ScrapeHawk/config"
)

// HttpClient performs the single outbound GET per request. One attempt,
// no retry; redirects are followed transparently by the underlying client.
type HttpClient struct {
	client       *http.Client
	headers      http.Header
	maxBodyBytes int64
}

func NewHttpClient(cfg *config.ScraperConfig) *HttpClient {
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		DisableKeepAlives:   false,
		DisableCompression:  false,
	}
	if cfg.ProxyEnabled {
		proxyUrl, err := url.Parse(cfg.ProxyUrl)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyUrl)
		} else {
			fmt.Printf("failed to load the proxy : %s. Please check the config file", cfg.ProxyUrl)
		}
	}
	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.FetchTimeout,
	}
	headers := http.Header{
		"User-Agent":      []string{cfg.UserAgent},
		"Accept":          []string{"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		"Accept-Language": []string{"en-US,en;q=0.5"},
		"Connection":      []string{"keep-alive"},
	}
	return &HttpClient{
		client:       client,
		headers:      headers,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// Fetch GETs pageUrl and returns the response body decoded to UTF-8.
// Failures are classified into TimeoutError, UpstreamStatusError and
// TransportError; the caller maps those to HTTP statuses.
func (h *HttpClient) Fetch(ctx context.Context, pageUrl string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageUrl, nil)
	if err != nil {
		return nil, &TransportError{URL: pageUrl, Err: err}
	}
	for key, vals := range h.headers {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: pageUrl, Err: err}
		}
		return nil, &TransportError{URL: pageUrl, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamStatusError{URL: pageUrl, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: pageUrl, Err: err}
		}
		return nil, &TransportError{URL: pageUrl, Err: err}
	}
	return toUTF8(body, resp.Header.Get("Content-Type")), nil
}

// toUTF8 converts the body to UTF-8 based on the Content-Type charset.
// If detection or conversion fails the raw bytes are returned unchanged.
func toUTF8(body []byte, contentType string) []byte {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return body
	}
	converted, err := io.ReadAll(reader)
	if err != nil {
		return body
	}
	return converted
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

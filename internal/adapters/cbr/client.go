// Package cbr talks to the Central Bank of Russia feeds: it fetches the
// published files and parses the daily rate and BIC directory documents.
package cbr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
)

const (
	// DefaultCurrencyURL is the public daily rate feed.
	DefaultCurrencyURL = "https://www.cbr.ru/scripts/XML_daily.asp"
	// DefaultBanksBaseURL is the directory the BIC archives are published in.
	DefaultBanksBaseURL = "https://www.cbr.ru/vfs/mcirabis/BIKNew/"

	bankDirectorySuffix = "ED01OSBR.zip"
)

// Client fetches feed files over HTTP. It performs exactly one request per call.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client. A nil httpClient means a client with transport defaults.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

// Fetch GETs rawURL and returns the response body.
// Any failure wraps apperrors.ErrTransport; a 404 also wraps apperrors.ErrFeedNotFound.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request for %s: %w", apperrors.ErrTransport, rawURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", apperrors.ErrTransport, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %w: GET %s returned %s", apperrors.ErrTransport, apperrors.ErrFeedNotFound, rawURL, resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %s", apperrors.ErrTransport, rawURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body of %s: %w", apperrors.ErrTransport, rawURL, err)
	}
	return body, nil
}

// BankDirectoryURL resolves the archive name for day against baseURL,
// e.g. https://www.cbr.ru/vfs/mcirabis/BIKNew/20241201ED01OSBR.zip.
func BankDirectoryURL(baseURL string, day time.Time) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid bank directory base URL %q: %w", apperrors.ErrValidation, baseURL, err)
	}
	ref := &url.URL{Path: day.Format("20060102") + bankDirectorySuffix}
	return base.ResolveReference(ref).String(), nil
}

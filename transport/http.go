package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DSP0200 HTTP extension headers
const (
	HeaderOperation       = "CIMOperation"
	HeaderMethod          = "CIMMethod"
	HeaderObject          = "CIMObject"
	HeaderBatch           = "CIMBatch"
	HeaderProtocolVersion = "CIMProtocolVersion"
	HeaderError           = "CIMError"

	contentType = `application/xml; charset="utf-8"`
	// maxErrorBody bounds the response body kept in a StatusError
	maxErrorBody = 2048
)

// HTTPOption is an HTTP option function
type HTTPOption func(*HTTP)

// WithHTTPClient sets the http.Client used for requests
func WithHTTPClient(c *http.Client) HTTPOption { return func(h *HTTP) { h.client = c } }

// WithBasicAuth sets the basic authentication credentials
func WithBasicAuth(username, password string) HTTPOption {
	return func(h *HTTP) { h.username, h.password = username, password }
}

// WithTimeout sets the timeout of the default http.Client
func WithTimeout(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		if d > 0 {
			h.client = &http.Client{Timeout: d}
		}
	}
}

// HTTP is an Exchanger posting requests to a CIMOM's URL
type HTTP struct {
	url      string
	client   *http.Client
	username string
	password string
}

// NewHTTP returns an HTTP exchanger for the CIMOM at rawURL, for example
// https://host:5989/cimom
func NewHTTP(rawURL string, opts ...HTTPOption) (*HTTP, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "cimom url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("cimom url %q: unsupported scheme %q", rawURL, u.Scheme)
	}
	h := &HTTP{url: u.String(), client: &http.Client{Timeout: 60 * time.Second}}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Exchange posts req and returns the response body
func (h *HTTP) Exchange(ctx context.Context, req *Request) (string, error) {
	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, strings.NewReader(req.Body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	hr.Header.Set("Content-Type", contentType)
	hr.Header.Set(HeaderOperation, "MethodCall")
	if req.ProtocolVersion != "" {
		hr.Header.Set(HeaderProtocolVersion, req.ProtocolVersion)
	}
	if req.Batch {
		hr.Header.Set(HeaderBatch, "")
	} else {
		hr.Header.Set(HeaderMethod, req.Method)
		hr.Header.Set(HeaderObject, url.PathEscape(req.Object))
	}
	if h.username != "" {
		hr.SetBasicAuth(h.username, h.password)
	}

	glog.V(2).Infof("cim-xml: POST %s %s=%q %s=%q", h.url, HeaderMethod, req.Method, HeaderObject, req.Object)
	resp, err := h.client.Do(hr)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || resp.Header.Get(HeaderError) != "" {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", errors.WithStack(&StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			CIMError:   resp.Header.Get(HeaderError),
			Body:       string(body),
		})
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}
	return string(body), nil
}

// Package api is the HTTP client for the records backend. Every call takes the
// caller's context so a request abandoned by the browser is cancelled too.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configure a Client.
type Options struct {
	BaseURL    string
	LoginPath  string // defaults to /auth/login; some backends use /usuarios/login
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
}

// Client talks to the backend. It is safe for concurrent use; WithToken
// returns a copy bound to one session.
type Client struct {
	baseURL   string
	loginPath string
	http      *http.Client
	log       logrus.FieldLogger
	token     string
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = "/auth/login"
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		loginPath: loginPath,
		http:      hc,
		log:       log,
	}
}

// WithToken returns a copy of c that sends Authorization: Bearer <token>.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Token is the bearer token attached to requests, if any.
func (c *Client) Token() string { return c.token }

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends one JSON request and returns the response when the status is 2xx.
// The caller must close the body.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (*http.Response, error) {
	return c.send(ctx, op, method, path, query, body, "application/json")
}

// send is do with an explicit Accept header.
func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, body any, accept string) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), rdr)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	fields := logrus.Fields{"op": op, "method": method, "path": req.URL.Path, "duration": time.Since(start).String()}
	if err != nil {
		c.log.WithFields(fields).WithError(err).Debug("backend request failed")
		return nil, &Error{Op: op, Err: err}
	}
	fields["status"] = resp.StatusCode
	c.log.WithFields(fields).Debug("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &Error{Op: op, Status: resp.StatusCode, Err: errorFromBody(resp)}
	}
	return resp, nil
}

// doJSON sends a request and decodes the response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	resp, err := c.do(ctx, op, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func recordPath(path string, id uint) string {
	return strings.TrimRight(path, "/") + "/" + strconv.FormatUint(uint64(id), 10)
}

// Get fetches one record by id.
func Get[T any](ctx context.Context, c *Client, path string, id uint) (T, error) {
	var out T
	err := c.doJSON(ctx, "get "+path, http.MethodGet, recordPath(path, id), nil, nil, &out)
	return out, err
}

// Create posts a new record with the full field set.
func (c *Client) Create(ctx context.Context, path string, record any) error {
	return c.doJSON(ctx, "create "+path, http.MethodPost, path, nil, record, nil)
}

// Update replaces record id with the full field set.
func (c *Client) Update(ctx context.Context, path string, id uint, record any) error {
	return c.doJSON(ctx, "update "+path, http.MethodPut, recordPath(path, id), nil, record, nil)
}

// Delete removes record id.
func (c *Client) Delete(ctx context.Context, path string, id uint) error {
	return c.doJSON(ctx, "delete "+path, http.MethodDelete, recordPath(path, id), nil, nil, nil)
}

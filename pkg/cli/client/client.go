/* Copyright 2025 Gymplan Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package client provides interfaces for interacting with the gym API
// and the data structures for responses
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	gymctx "github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/session"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// ErrInvalidLogin is an error for invalid credentials for login
var ErrInvalidLogin = errors.New("wrong credentials")

// ErrContentTypeMismatch is an error for a response that is not JSON
var ErrContentTypeMismatch = errors.New("content type mismatch")

// DefaultErrorMessage is shown when an error response carries no message
const DefaultErrorMessage = "the request failed"

// APIError represents a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

// IsNotFound returns true if the error is a 404 Not Found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

var contentTypeApplicationJSON = "application/json"

const (
	// clientRateLimitPerSecond is the max requests per second the client will make
	clientRateLimitPerSecond = 20
	// clientRateLimitBurst is the burst capacity for rate limiting
	clientRateLimitBurst = 40
	// clientTimeout bounds a single request including reading the body
	clientTimeout = 30 * time.Second
)

// rateLimitedTransport wraps an http.RoundTripper with rate limiting
type rateLimitedTransport struct {
	transport http.RoundTripper
	limiter   *rate.Limiter
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.transport.RoundTrip(req)
}

// NewRateLimitedHTTPClient creates an HTTP client with rate limiting
func NewRateLimitedHTTPClient() *http.Client {
	interval := time.Second / time.Duration(clientRateLimitPerSecond)

	transport := &rateLimitedTransport{
		transport: http.DefaultTransport,
		limiter:   rate.NewLimiter(rate.Every(interval), clientRateLimitBurst),
	}
	return &http.Client{
		Transport: transport,
		Timeout:   clientTimeout,
	}
}

// Client issues requests to the gym API on behalf of a session
type Client struct {
	endpoint   string
	version    string
	session    session.Session
	httpClient *http.Client
}

// New returns a client for the API endpoint and session of the given context
func New(ctx gymctx.GymCtx) *Client {
	hc := ctx.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: clientTimeout}
	}

	return &Client{
		endpoint:   strings.TrimRight(ctx.APIEndpoint, "/"),
		version:    ctx.Version,
		session:    ctx.Session,
		httpClient: hc,
	}
}

// Session returns the session the client acts for
func (c *Client) Session() session.Session {
	return c.session
}

func (c *Client) newReq(ctx context.Context, method, path string, payload interface{}) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling payload")
		}
		body = bytes.NewReader(b)
	}

	endpoint := fmt.Sprintf("%s%s", c.endpoint, path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "constructing http request")
	}

	req.Header.Set("Gymplan-Version", c.version)
	req.Header.Set("Accept", contentTypeApplicationJSON)
	if payload != nil {
		req.Header.Set("Content-Type", contentTypeApplicationJSON)
	}

	if c.session.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.session.Token))
	}

	return req, nil
}

type errorBody struct {
	Message string `json:"message"`
}

// checkRespErr returns an *APIError if the given response is not 2xx. The
// message of a structured error body is used when present.
func checkRespErr(res *http.Response, body []byte) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	msg := DefaultErrorMessage
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && strings.TrimSpace(eb.Message) != "" {
		msg = eb.Message
	}

	return &APIError{
		StatusCode: res.StatusCode,
		Message:    msg,
	}
}

func checkContentType(res *http.Response) error {
	got := res.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(got)
	if err != nil || mediaType != contentTypeApplicationJSON {
		return errors.Wrapf(ErrContentTypeMismatch, "got: '%s' want: '%s'. Did you configure your endpoint correctly?", got, contentTypeApplicationJSON)
	}

	return nil
}

// doReq does a http request to the given path in the api endpoint and
// decodes a JSON response body into dest, if dest is not nil
func (c *Client) doReq(ctx context.Context, method, path string, payload, dest interface{}) error {
	req, err := c.newReq(ctx, method, path, payload)
	if err != nil {
		return errors.Wrap(err, "getting request")
	}

	log.Debug("HTTP %s %s\n", method, path)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not reach the server")
	}
	defer res.Body.Close()

	log.Debug("HTTP %s\n", res.Status)

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "reading the response body")
	}

	if err := checkRespErr(res, body); err != nil {
		return err
	}

	if dest == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := checkContentType(res); err != nil {
		return errors.Wrap(err, "unexpected Content-Type")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return errors.Wrap(err, "decoding payload")
	}

	return nil
}

// doAuthorizedReq does a http request to the given path in the api endpoint as a user.
// The given path should include the preceding slash.
func (c *Client) doAuthorizedReq(ctx context.Context, method, path string, payload, dest interface{}) error {
	if !c.session.LoggedIn() {
		return session.ErrNotLoggedIn
	}

	return c.doReq(ctx, method, path, payload, dest)
}

// LoginPayload is a payload for /login
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is a response from /login endpoint
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
}

// Login requests a bearer token for the given credentials
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	payload := LoginPayload{
		Email:    email,
		Password: password,
	}

	var resp LoginResponse
	if err := c.doReq(ctx, http.MethodPost, "/login", payload, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized && apiErr.Message == DefaultErrorMessage {
			return LoginResponse{}, ErrInvalidLogin
		}
		return LoginResponse{}, errors.Wrap(err, "logging in")
	}

	if resp.Token == "" {
		return LoginResponse{}, errors.New("server returned no token")
	}

	return resp, nil
}

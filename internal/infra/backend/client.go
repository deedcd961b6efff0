// Package backend talks to the remote storefront API. It owns the wire format
// of that API and translates its failures into domain errors.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

// tokenCookie is the cookie the backend reads its credential from.
const tokenCookie = "token"

// Params holds dependencies for the backend client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client sends requests to the backend through a circuit breaker. Requests are
// never retried and carry no deadline of their own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*rawResponse]
	logger     *slog.Logger
}

type rawResponse struct {
	status  int
	body    []byte
	cookies []*http.Cookie
}

// envelope is the part of every backend response the client interprets itself.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// serverFailure marks a 5xx answer so the breaker counts it.
type serverFailure struct {
	resp *rawResponse
}

func (e *serverFailure) Error() string {
	return "backend answered " + http.StatusText(e.resp.status)
}

// NewClient creates the backend client from config.
func NewClient(params Params) *Client {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return newClient(params.Config.Backend, httpClient, params.Logger)
}

func newClient(cfg *config.BackendConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	failures := cfg.Breaker.ConsecutiveFailures
	settings := gobreaker.Settings{
		Name:        "storefront-backend",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return failures > 0 && counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsAny(err, context.Canceled, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Backend circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		breaker:    gobreaker.NewCircuitBreaker[*rawResponse](settings),
		logger:     logger,
	}
}

// get is call without a body.
func (c *Client) get(ctx context.Context, path, token string, query url.Values, out any) error {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	return c.call(ctx, http.MethodGet, path, token, nil, out)
}

// call sends one request and decodes the response envelope into out.
// A nil out discards the payload.
func (c *Client) call(ctx context.Context, method, path, token string, in, out any) error {
	_, err := c.exchange(ctx, method, path, token, in, out)

	return err
}

// exchange is call that also returns the cookies the backend set.
func (c *Client) exchange(ctx context.Context, method, path, token string, in, out any) ([]*http.Cookie, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: tokenCookie, Value: token})
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.breaker.Execute(func() (*rawResponse, error) {
		return c.roundTrip(req)
	})

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	var failure *serverFailure
	switch {
	case errors.As(err, &failure):
		resp = failure.resp
	case err != nil:
		logger.Warn("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewBackendError(0, "", err)
	}

	if err := c.decode(logger, method, path, resp, out); err != nil {
		return nil, err
	}

	return resp.cookies, nil
}

func (c *Client) roundTrip(req *http.Request) (*rawResponse, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	raw := &rawResponse{status: resp.StatusCode, body: data, cookies: resp.Cookies()}
	if resp.StatusCode >= http.StatusInternalServerError {
		return raw, &serverFailure{resp: raw}
	}

	return raw, nil
}

func (c *Client) decode(logger *slog.Logger, method, path string, resp *rawResponse, out any) error {
	var env envelope
	decodeErr := json.Unmarshal(resp.body, &env)

	if resp.status >= http.StatusBadRequest {
		message := env.Message
		if decodeErr != nil || message == "" {
			message = http.StatusText(resp.status)
		}
		logger.Debug("Backend rejected request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.status),
			slog.String("message", message),
		)

		return domainerrors.NewBackendError(resp.status, message, nil)
	}

	if decodeErr != nil {
		return domainerrors.NewBackendError(0, "malformed response", errors.Wrapf(decodeErr, "decode %s %s", method, path))
	}
	if env.Success != nil && !*env.Success {
		return domainerrors.NewBackendError(resp.status, env.Message, nil)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return domainerrors.NewBackendError(0, "malformed response", errors.Wrapf(err, "decode %s %s", method, path))
	}

	return nil
}

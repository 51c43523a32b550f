package backend

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"glamp/config"
	"glamp/infras/otel"
	"glamp/shared/constant"
	"glamp/shared/logger"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

const apiPrefix = "/api"

// Client talks to the booking and finance REST backend. Successful calls
// return the response body untouched; use UnwrapList and UnwrapObject to
// read it. The bearer token is taken from the request context.
type Client interface {
	Do(ctx context.Context, method, endpoint string, query url.Values, body any) (json.RawMessage, error)
	Get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error)
	Patch(ctx context.Context, endpoint string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, endpoint string) (json.RawMessage, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return NewWithHTTPClient(cfg.Backend.APIBaseURL, &http.Client{Timeout: timeout}, ot)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, ot otel.Otel) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		otel:       ot,
	}
}

// WithToken returns a context carrying the bearer token for backend calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.ContextKeyAuthToken, token)
}

// TokenFromContext returns the bearer token stored by WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(constant.ContextKeyAuthToken).(string)

	return token
}

func (c *clientImpl) Get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, endpoint, query, nil)
}

func (c *clientImpl) Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, endpoint, nil, body)
}

func (c *clientImpl) Patch(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPatch, endpoint, nil, body)
}

func (c *clientImpl) Delete(ctx context.Context, endpoint string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// Do issues one request. No retries are attempted.
func (c *clientImpl) Do(ctx context.Context, method, endpoint string, query url.Values, body any) (res json.RawMessage, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Backend."+method)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("http.method", method)
	scope.SetAttribute("http.route", Template(endpoint))

	log := logger.WithContext(ctx)

	target := c.baseURL + apiPrefix + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, constant.BearerPrefix+token)
	}

	if requestID := middleware.GetReqID(ctx); requestID != "" {
		req.Header.Set(constant.RequestHeaderRequestID, requestID)
	}

	log.Debug().Str("method", method).Str("endpoint", endpoint).Str("query", query.Encode()).Msg("backend request")

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(method, endpoint, 0, time.Since(start))
		log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("backend unreachable")

		return nil, newConnectionError()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)

	observe(method, endpoint, resp.StatusCode, elapsed)
	scope.SetAttribute("http.status_code", resp.StatusCode)

	if err != nil {
		log.Error().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("failed to read backend response")

		return nil, newConnectionError()
	}

	if !isSuccess(resp.StatusCode) {
		backendErr := newResponseError(resp.StatusCode, raw)

		log.Error().
			Str("method", method).
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Dur("latency", elapsed).
			Str("message", backendErr.Message).
			Msg("backend request failed")

		return nil, backendErr
	}

	log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("latency", elapsed).
		Int("bytes", len(raw)).
		Msg("backend response")

	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(raw), nil
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Options struct {
	BaseURL   string
	Timeout   time.Duration // zero means no client-side timeout
	UserAgent string
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client is the shared REST transport for every backend resource.
type Client struct {
	r   *resty.Client
	log *slog.Logger
}

type Request struct {
	Method     string
	Path       string
	PathParams map[string]string
	Query      map[string]string
	Body       any
}

func New(opts Options) *Client {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = "storefront-client"
	}

	hc := &http.Client{Transport: otelhttp.NewTransport(base)}
	r := resty.NewWithClient(hc).
		SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", ua).
		SetRetryCount(0)
	if opts.Timeout > 0 {
		r.SetTimeout(opts.Timeout)
	}

	c := &Client{r: r, log: log}
	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.log.Debug("api response",
			slog.String("method", resp.Request.Method),
			slog.String("url", resp.Request.URL),
			slog.Int("status", resp.StatusCode()),
			slog.Duration("took", resp.Time()),
		)
		return nil
	})
	return c
}

// Do sends req and decodes a 2xx body into out (when out is non-nil).
// Any other outcome is returned as *Error.
func (c *Client) Do(ctx context.Context, op string, req Request, out any) error {
	rr := c.r.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if len(req.PathParams) > 0 {
		rr.SetPathParams(req.PathParams)
	}
	if len(req.Query) > 0 {
		rr.SetQueryParams(req.Query)
	}
	if req.Body != nil {
		rr.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	resp, err := rr.Execute(req.Method, req.Path)
	if err != nil {
		return &Error{Kind: KindServer, Op: op, Message: "request failed", Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return FromStatus(op, resp.StatusCode(), resp.Body())
	}

	body := resp.Body()
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{
			Kind:    KindServer,
			Status:  resp.StatusCode(),
			Op:      op,
			Message: "malformed response",
			Err:     fmt.Errorf("decode %T: %w", out, err),
		}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, op, path string, params map[string]string, out any) error {
	return c.Do(ctx, op, Request{Method: http.MethodGet, Path: path, PathParams: params}, out)
}

func (c *Client) Post(ctx context.Context, op, path string, params map[string]string, body, out any) error {
	return c.Do(ctx, op, Request{Method: http.MethodPost, Path: path, PathParams: params, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, op, path string, params map[string]string, out any) error {
	return c.Do(ctx, op, Request{Method: http.MethodDelete, Path: path, PathParams: params}, out)
}

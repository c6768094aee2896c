package inpaint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Request is one inpainting generation job. Image and Mask are data URLs,
// typically a draw canvas snapshot and the BuildMask output for the same
// stroke list.
type Request struct {
	// ID identifies the job; assigned when empty.
	ID string `json:"id"`

	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt,omitempty"`

	// Image is the source image, Mask the white-on-black inpaint mask.
	Image string `json:"image"`
	Mask  string `json:"mask_image"`

	Width  int `json:"width"`
	Height int `json:"height"`

	Steps    int     `json:"steps,omitempty"`
	CFGScale float64 `json:"guidance_scale,omitempty"`
	Seed     int64   `json:"seed,omitempty"`
	Model    string  `json:"model,omitempty"`
}

// Result carries the backend's response: generated images as data URLs and
// the reported generation time in seconds.
type Result struct {
	Images []string `json:"images"`
	Time   float64  `json:"time"`
}

// Client talks to a generation backend over JSON/HTTP.
type Client struct {
	base *url.URL
	hc   *http.Client
	log  *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.hc = hc }
}

// WithLogger sets the client's logger. The default is silent.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("inpaint: invalid base URL %q: %w", baseURL, err)
	}
	c := &Client{
		base: base,
		hc:   http.DefaultClient,
		log:  slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Inpaint submits the job and blocks until the backend responds with the
// generated images.
func (c *Client) Inpaint(ctx context.Context, req Request) (*Result, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Image == "" || req.Mask == "" {
		return nil, fmt.Errorf("inpaint: request requires both image and mask")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("inpaint: marshal request: %w", err)
	}

	endpoint := c.base.JoinPath("api", "generate", "inpainting")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.Debug("inpaint: submitting job", "id", req.ID, "size", fmt.Sprintf("%dx%d", req.Width, req.Height))
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("inpaint: submit job %s: %w", req.ID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("inpaint: job %s: backend returned %s: %s",
			req.ID, resp.Status, strings.TrimSpace(string(msg)))
	}

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("inpaint: decode response for job %s: %w", req.ID, err)
	}
	return &res, nil
}

// discardHandler drops all records; mirrors easel's silent default.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

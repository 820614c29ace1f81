package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Type is the submission kind understood by the spreadsheet script.
type Type string

const (
	TypeContact          Type = "contact"
	TypeNewsletter       Type = "newsletter"
	TypeBulkOrder        Type = "bulk-order"
	TypeCheckout         Type = "checkout"
	TypeUserRegistration Type = "user-registration"
)

// Valid reports whether t is one of the supported submission types.
func (t Type) Valid() bool {
	switch t {
	case TypeContact, TypeNewsletter, TypeBulkOrder, TypeCheckout, TypeUserRegistration:
		return true
	}
	return false
}

const (
	StatusSuccess = "success"
	StatusError   = "error"

	// text/plain keeps browsers from sending a CORS preflight, which the
	// script endpoint does not answer. The server side sends the same type.
	contentType = "text/plain;charset=utf-8"
)

var (
	ErrUnknownType      = errors.New("unknown submission type")
	ErrInvalidPayload   = errors.New("invalid submission payload")
	ErrTransport        = errors.New("submission transport failure")
	ErrUnexpectedStatus = errors.New("unexpected response status from spreadsheet endpoint")
	ErrRemote           = errors.New("spreadsheet endpoint reported an error")
)

// Request is the wire envelope.
type Request struct {
	Type Type `json:"type"`
	Data any  `json:"data"`
}

// Result is the endpoint's reply.
type Result struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	Type           string `json:"type,omitempty"`
	SpreadsheetURL string `json:"spreadsheetUrl,omitempty"`
}

// Config holds the endpoint details.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client posts form submissions to the spreadsheet web app.
// It never retries; every call is a single attempt.
type Client struct {
	url      string
	timeout  time.Duration
	validate *validator.Validate
	logger   *zap.Logger
}

// NewClient creates a new submission client.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("spreadsheet endpoint URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:      cfg.URL,
		timeout:  cfg.Timeout,
		validate: validator.New(),
		logger:   logger.Named("sheets"),
	}, nil
}

// Submit validates data and sends it as one submission of type t.
// Invalid payloads are rejected before any network call.
func (c *Client) Submit(ctx context.Context, t Type, data any) (*Result, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: data is required", ErrInvalidPayload)
	}
	if err := c.validate.Struct(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(Request{Type: t, Data: data})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	status, respBody, err := c.post(body, timeout)
	if err != nil {
		c.logger.Warn("submission request failed", zap.String("type", string(t)), zap.Error(err))
		return nil, err
	}
	if status < 200 || status > 299 {
		c.logger.Warn("spreadsheet endpoint returned non-2xx",
			zap.String("type", string(t)),
			zap.Int("status", status),
			zap.ByteString("body", truncate(respBody, 512)))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: undecodable response: %v", ErrUnexpectedStatus, err)
	}
	if result.Status != StatusSuccess {
		msg := result.Message
		if msg == "" {
			msg = "an unknown error occurred in the script"
		}
		c.logger.Warn("spreadsheet endpoint reported an error", zap.String("type", string(t)), zap.String("message", msg))
		return &result, fmt.Errorf("%w: %s", ErrRemote, msg)
	}

	c.logger.Debug("submission stored",
		zap.String("type", string(t)),
		zap.String("spreadsheet_url", result.SpreadsheetURL))
	return &result, nil
}

// post sends body once. The script host answers a POST with a redirect to the
// rendered output, which is fetched with a GET.
func (c *Client) post(body []byte, timeout time.Duration) (int, []byte, error) {
	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)

	agent := fiber.Post(c.url)
	agent.Set(fiber.HeaderContentType, contentType)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Body(body)
	agent.Timeout(timeout)
	agent.SetResponse(resp)
	if err := agent.Parse(); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	status, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("%w: %v", ErrTransport, errors.Join(errs...))
	}

	switch status {
	case fiber.StatusMovedPermanently, fiber.StatusFound, fiber.StatusSeeOther:
		location := string(resp.Header.Peek(fiber.HeaderLocation))
		if location == "" {
			return status, respBody, nil
		}
		target, err := c.resolve(location)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: bad redirect location %q: %v", ErrTransport, location, err)
		}
		follow := fiber.Get(target)
		follow.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
		follow.Timeout(timeout)
		if err := follow.Parse(); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		status, respBody, errs = follow.Bytes()
		if len(errs) > 0 {
			return 0, nil, fmt.Errorf("%w: %v", ErrTransport, errors.Join(errs...))
		}
	}
	return status, respBody, nil
}

func (c *Client) resolve(location string) (string, error) {
	base, err := url.Parse(c.url)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/simsync/internal/domain"
	"github.com/bnema/simsync/internal/ports"
)

const (
	maxResponseBytes      = 1 << 20
	maxErrorBodyBytes     = 512
	defaultRequestTimeout = 10 * time.Second

	DefaultResetPath   = "/simulation/reset"
	DefaultSessionPath = "/session"
	DefaultStepPath    = "/step/next"
)

var errResponseTooLarge = errors.New("response exceeds 1 MiB")

type API struct {
	BaseURL     string
	ResetPath   string
	SessionPath string
	StepPath    string
}

// Client speaks the simulation wire contract. It issues exactly one request per
// call and never retries; retry policy belongs to the synchronization loop.
type Client struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	UserAgent      string
}

var _ ports.SimulationAPI = Client{}

func NewClient(baseURL string, httpClient *http.Client, requestTimeout time.Duration) Client {
	return Client{
		API: API{
			BaseURL:     baseURL,
			ResetPath:   DefaultResetPath,
			SessionPath: DefaultSessionPath,
			StepPath:    DefaultStepPath,
		},
		HTTPClient:     httpClient,
		RequestTimeout: requestTimeout,
	}
}

func (c Client) Reset(ctx context.Context) error {
	const op = "reset simulation"

	resp, err := c.do(ctx, op, http.MethodPost, c.path(c.API.ResetPath, DefaultResetPath), nil, struct{}{})
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(op, resp)
	}

	return nil
}

func (c Client) FetchSession(ctx context.Context) (domain.SessionDescriptor, error) {
	const op = "fetch session"

	resp, err := c.do(ctx, op, http.MethodGet, c.path(c.API.SessionPath, DefaultSessionPath), nil, nil)
	if err != nil {
		return domain.SessionDescriptor{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return domain.SessionDescriptor{}, statusError(op, resp)
	}

	var payload sessionPayload
	if err := decodeStrict(resp.Body, &payload); err != nil {
		return domain.SessionDescriptor{}, &domain.DecodeError{Op: op, Err: err}
	}

	descriptor, err := payload.toDomain()
	if err != nil {
		return domain.SessionDescriptor{}, &domain.DecodeError{Op: op, Err: err}
	}

	return descriptor, nil
}

func (c Client) NextStep(ctx context.Context, id domain.AgentID) (domain.StepRecord, error) {
	op := fmt.Sprintf("next step for agent %d", id)

	query := url.Values{}
	query.Set("robot_id", strconv.Itoa(int(id)))

	resp, err := c.do(ctx, op, http.MethodGet, c.path(c.API.StepPath, DefaultStepPath), query, nil)
	if err != nil {
		return domain.StepRecord{}, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return domain.StepRecord{}, domain.ErrNoStepAvailable
	default:
		return domain.StepRecord{}, statusError(op, resp)
	}

	var payload stepPayload
	if err := decodeStrict(resp.Body, &payload); err != nil {
		return domain.StepRecord{}, &domain.DecodeError{Op: op, Err: err}
	}

	record, err := payload.toDomain()
	if err != nil {
		return domain.StepRecord{}, &domain.DecodeError{Op: op, Err: err}
	}

	return record, nil
}

type response struct {
	StatusCode int
	Body       []byte
}

func (c Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (response, error) {
	endpoint, err := buildAPIURL(c.API.BaseURL, path)
	if err != nil {
		return response{}, &domain.TransportError{Op: op, Err: err}
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return response{}, fmt.Errorf("%s: encode request body: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return response{}, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return response{}, &domain.TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return response{}, &domain.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(data) > maxResponseBytes {
		return response{}, &domain.DecodeError{Op: op, Err: errResponseTooLarge}
	}

	return response{StatusCode: resp.StatusCode, Body: data}, nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func (c Client) path(configured, fallback string) string {
	if strings.TrimSpace(configured) == "" {
		return fallback
	}
	return configured
}

func statusError(op string, resp response) *domain.StatusError {
	body := strings.TrimSpace(string(resp.Body))
	if len(body) > maxErrorBodyBytes {
		cut := maxErrorBodyBytes
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = strings.ToValidUTF8(body[:cut], "")
	}
	return &domain.StatusError{Op: op, StatusCode: resp.StatusCode, Body: body}
}

func decodeStrict(data []byte, target any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("empty response body")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected trailing data")
	}

	return nil
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	endpoint, err := parsed.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}

package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
	"github.com/Lead-Coder/api-rate-limit/internal/events"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultAuthHeader   = "X-API-KEY"
	DefaultValidatePath = "/auth/verify-api-key"
	DefaultTimeout      = 10 * time.Second

	RequestIDHeader = "X-Request-ID"

	clientPath = "/admin/clients/{id}"
)

const (
	OpValidate     = "validate"
	OpListClients  = "list_clients"
	OpCreateClient = "create_client"
	OpUpdateClient = "update_client"
	OpDeleteClient = "delete_client"
	OpListLogs     = "list_logs"
	OpUsageStats   = "usage_stats"
)

type Auth interface {
	Validate(ctx context.Context, credential string) (domain.Validation, error)
}

type Clients interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, c domain.NewClient) (domain.Client, error)
	UpdateClient(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

type Logs interface {
	ListLogs(ctx context.Context) ([]domain.LogEntry, error)
}

type Stats interface {
	UsageStats(ctx context.Context) (domain.UsageStats, error)
}

type API interface {
	Auth
	Clients
	Logs
	Stats
}

// CredentialSource yields the credential attached to authenticated calls and
// the session epoch it was issued under.
type CredentialSource interface {
	Snapshot() (domain.Session, uint64, bool)
}

type Publisher interface {
	PublishSessionInvalidated(ev events.SessionInvalidated)
}

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	AuthHeader   string
	ValidatePath string
}

type Client struct {
	http         *resty.Client
	creds        CredentialSource
	bus          Publisher
	counter      metrics.Counter
	authHeader   string
	validatePath string
}

func New(cfg Config, creds CredentialSource, bus Publisher, counter metrics.Counter) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = DefaultAuthHeader
	}
	if cfg.ValidatePath == "" {
		cfg.ValidatePath = DefaultValidatePath
	}

	hc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(log.StandardLogger()).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(RequestIDHeader) == "" {
				r.SetHeader(RequestIDHeader, uuid.NewString())
			}
			return nil
		})

	return &Client{
		http:         hc,
		creds:        creds,
		bus:          bus,
		counter:      counter,
		authHeader:   cfg.AuthHeader,
		validatePath: cfg.ValidatePath,
	}
}

// Validate asks the backend whether credential is active and which role it carries.
// Rejections come back as domain.ErrInvalidCredential and never invalidate the session.
func (c *Client) Validate(ctx context.Context, credential string) (domain.Validation, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		c.observe(OpValidate, "invalid")
		return domain.Validation{}, domain.ErrInvalidCredential
	}

	var out validateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(validateRequest{APIKey: credential}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(c.validatePath)
	if err != nil {
		c.observe(OpValidate, "error")
		return domain.Validation{}, transient(OpValidate, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		c.observe(OpValidate, "invalid")
		return domain.Validation{}, domain.ErrInvalidCredential
	default:
		c.observe(OpValidate, "error")
		return domain.Validation{}, transient(OpValidate, fmt.Errorf("status %d", resp.StatusCode()))
	}

	role, ok := domain.ParseRole(out.Role)
	if !out.Valid || !ok {
		c.observe(OpValidate, "invalid")
		return domain.Validation{}, domain.ErrInvalidCredential
	}

	c.observe(OpValidate, "ok")
	return domain.Validation{
		Valid:       true,
		Role:        role,
		DisplayName: out.ClientName,
		RateLimit:   out.RateLimit,
	}, nil
}

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var out []clientDTO
	if err := c.do(ctx, OpListClients, http.MethodGet, "/admin/clients", nil, &out); err != nil {
		return nil, err
	}
	clients := make([]domain.Client, 0, len(out))
	for _, dto := range out {
		clients = append(clients, dto.toDomain())
	}
	return clients, nil
}

func (c *Client) CreateClient(ctx context.Context, nc domain.NewClient) (domain.Client, error) {
	var out clientDTO
	body := createClientRequest{ClientName: nc.DisplayName, RateLimitPerMinute: nc.RateLimitPerMinute}
	if err := c.do(ctx, OpCreateClient, http.MethodPost, "/admin/clients", body, &out); err != nil {
		return domain.Client{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, error) {
	var out clientDTO
	if err := c.do(ctx, OpUpdateClient, http.MethodPut, clientPath, newUpdateClientRequest(patch), &out, id); err != nil {
		return domain.Client{}, err
	}
	return out.toDomain(), nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, OpDeleteClient, http.MethodDelete, clientPath, nil, nil, id)
}

func (c *Client) ListLogs(ctx context.Context) ([]domain.LogEntry, error) {
	var out []logDTO
	if err := c.do(ctx, OpListLogs, http.MethodGet, "/admin/logs", nil, &out); err != nil {
		return nil, err
	}
	logs := make([]domain.LogEntry, 0, len(out))
	for _, dto := range out {
		logs = append(logs, dto.toDomain())
	}
	return logs, nil
}

func (c *Client) UsageStats(ctx context.Context) (domain.UsageStats, error) {
	var out statsDTO
	if err := c.do(ctx, OpUsageStats, http.MethodGet, "/client/stats", nil, &out); err != nil {
		return domain.UsageStats{}, err
	}
	return out.toDomain(), nil
}

// do runs an authenticated call. A missing credential or a 401/403 answer
// publishes SessionInvalidated before returning.
// id, when given, fills the {id} segment of path.
func (c *Client) do(ctx context.Context, op, method, path string, body, result any, id ...string) error {
	sess, epoch, ok := c.creds.Snapshot()
	if !ok {
		c.observe(op, "unauthenticated")
		c.invalidate(epoch, "missing credential", 0)
		return domain.ErrUnauthenticated
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader(c.authHeader, sess.Credential)
	if len(id) > 0 {
		req.SetPathParam("id", id[0])
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result).ForceContentType("application/json")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.observe(op, "error")
		return transient(op, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		c.observe(op, "unauthorized")
		c.invalidate(epoch, fmt.Sprintf("%s rejected", op), code)
		return domain.ErrSessionInvalidated
	case resp.IsError() || code >= http.StatusMultipleChoices:
		c.observe(op, "error")
		return transient(op, fmt.Errorf("status %d", code))
	}

	c.observe(op, "ok")
	return nil
}

func (c *Client) invalidate(epoch uint64, reason string, status int) {
	log.WithFields(log.Fields{"reason": reason, "status": status}).Warn("session invalidated by gateway")
	if c.bus != nil {
		c.bus.PublishSessionInvalidated(events.SessionInvalidated{Epoch: epoch, Reason: reason, Status: status})
	}
}

func (c *Client) observe(op, outcome string) {
	if c.counter != nil {
		c.counter.Inc(op, outcome)
	}
}

func transient(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrTransientFetch, op, err)
}

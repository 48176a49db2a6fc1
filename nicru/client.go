// Package nicru is a client for the NIC.RU (Ru-Center) DNS management
// API. It authenticates with an OAuth2 password grant, enumerates
// services and zones, reads and submits resource records, and drives the
// staged commit/rollback cycle of zone changes.
//
// The client never retries and never recovers internally: every failure
// is surfaced to the caller with the server's diagnostic text attached,
// because the remote API is the source of truth for business rules and
// intermediate submission states are not assumed idempotent.
package nicru

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-logr/logr"

	"github.com/yuriy-kovalchuk/nicru-dns/nicru/record"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.nic.ru"

// Doer sends one signed HTTP request. *http.Client satisfies it; the
// client returned by NewOAuthClient is the usual implementation. All
// transport concerns (token refresh, timeouts, TLS) live behind it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client calls the DNS management API. Operations taking service/zone
// arguments fall back to the configured defaults when given "".
type Client struct {
	httpc   Doer
	baseURL string
	service string
	zone    string
	log     logr.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL, for test servers.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithDefaults sets the default service and zone. Zones of
// internationalized domains must be given in IDNA ASCII form.
func WithDefaults(service, zone string) Option {
	return func(c *Client) {
		c.service = service
		c.zone = zone
	}
}

// New creates a client on top of the given transport. A nil transport
// falls back to http.DefaultClient, which only works against endpoints
// that skip authentication.
func New(httpc Doer, opts ...Option) *Client {
	c := &Client{
		httpc:   httpc,
		baseURL: DefaultBaseURL,
		log:     logr.Discard(),
	}
	if c.httpc == nil {
		c.httpc = http.DefaultClient
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do issues a single blocking request against the dns-master API and
// returns status and body. Non-2xx statuses are not an error at this
// level; each operation maps them through apiError.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	url := c.baseURL + "/dns-master/" + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("nicru: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "text/xml")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("nicru: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("nicru: read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

func (c *Client) resolve(service, zone string) (string, string, error) {
	if service == "" {
		service = c.service
	}
	if zone == "" {
		zone = c.zone
	}
	if service == "" {
		return "", "", errors.New("nicru: no service given and no default configured")
	}
	if zone == "" {
		return "", "", errors.New("nicru: no zone given and no default configured")
	}
	return service, zone, nil
}

// Services lists the DNS services available to the account.
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	status, body, err := c.do(ctx, http.MethodGet, "services", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, body)
	}
	return parseServices(body)
}

// Zones lists the zones of a service, or of the whole account when
// service is "" and no default service is configured.
func (c *Client) Zones(ctx context.Context, service string) ([]Zone, error) {
	if service == "" {
		service = c.service
	}
	path := "zones"
	if service != "" {
		path = "services/" + service + "/zones"
	}
	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, body)
	}
	return parseZones(body)
}

// Zonefile fetches the zone file text for a zone.
func (c *Client) Zonefile(ctx context.Context, service, zone string) (string, error) {
	service, zone, err := c.resolve(service, zone)
	if err != nil {
		return "", err
	}
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("services/%s/zones/%s", service, zone), nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", apiError(status, body)
	}
	return string(body), nil
}

// Records lists all records of a zone.
func (c *Client) Records(ctx context.Context, service, zone string) ([]record.Record, error) {
	service, zone, err := c.resolve(service, zone)
	if err != nil {
		return nil, err
	}
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("services/%s/zones/%s/records", service, zone), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, body)
	}
	return record.ParseZone(body, zone)
}

// AddRecords submits new records to a zone's pending changeset and
// returns the server-confirmed set, including assigned ids. The call
// succeeds or fails as a unit; the records are not live until Commit.
func (c *Client) AddRecords(ctx context.Context, records []record.Record, service, zone string) ([]record.Record, error) {
	service, zone, err := c.resolve(service, zone)
	if err != nil {
		return nil, err
	}
	body, err := record.BuildRequest(records)
	if err != nil {
		return nil, err
	}
	c.log.V(1).Info("adding records", "service", service, "zone", zone, "count", len(records))

	status, data, err := c.do(ctx, http.MethodPut, fmt.Sprintf("services/%s/zones/%s/records", service, zone), body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, data)
	}
	c.log.Info("records added", "service", service, "zone", zone, "count", len(records))
	return record.ParseZone(data, zone)
}

// DeleteRecord removes a record from a zone's pending changeset by its
// server-assigned id.
func (c *Client) DeleteRecord(ctx context.Context, id int, service, zone string) error {
	service, zone, err := c.resolve(service, zone)
	if err != nil {
		return err
	}
	status, body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("services/%s/zones/%s/records/%d", service, zone, id), nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return apiError(status, body)
	}
	c.log.Info("record deleted", "service", service, "zone", zone, "id", id)
	return nil
}

// Commit publishes the zone's pending changeset.
func (c *Client) Commit(ctx context.Context, service, zone string) error {
	service, zone, err := c.resolve(service, zone)
	if err != nil {
		return err
	}
	status, body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("services/%s/zones/%s/commit", service, zone), nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return apiError(status, body)
	}
	c.log.Info("changes committed", "service", service, "zone", zone)
	return nil
}

// Rollback discards the zone's pending changeset.
func (c *Client) Rollback(ctx context.Context, service, zone string) error {
	service, zone, err := c.resolve(service, zone)
	if err != nil {
		return err
	}
	status, body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("services/%s/zones/%s/rollback", service, zone), nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return apiError(status, body)
	}
	c.log.Info("changes rolled back", "service", service, "zone", zone)
	return nil
}

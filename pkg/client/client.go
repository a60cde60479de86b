// Package client is the data-access side of the trench records API. Every
// entity collection is exposed as a Resource with list, create, update and
// delete calls; report endpoints have their own methods.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"silage/entities"
	"silage/pkg/aggregate"
)

const apiPrefix = "/api/v1/trench"

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Mentions reports whether the server message contains substr, e.g. the name
// of a violated unique constraint.
func (e *APIError) Mentions(substr string) bool {
	return strings.Contains(e.Message, substr)
}

type errorBody struct {
	Error string `json:"error"`
}

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

type Option func(*Client)

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient swaps the underlying transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = resty.NewWithClient(hc) }
}

// New builds a client for the server at baseURL. Requests are never retried
// and carry no timeout of their own; cancel through the context.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{http: resty.New(), logger: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	c.http.
		SetBaseURL(strings.TrimRight(baseURL, "/")+apiPrefix).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return c
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetError(&errorBody{})
}

func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error("request failed", zap.Error(err))
		return fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsError() {
		return nil
	}
	msg := resp.Status()
	if b, ok := resp.Error().(*errorBody); ok && b.Error != "" {
		msg = b.Error
	}
	c.logger.Warn("api error",
		zap.String("method", resp.Request.Method),
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.String("error", msg))
	return &APIError{Status: resp.StatusCode(), Message: msg}
}

// Resource is one CRUD collection of the API.
type Resource[T any] struct {
	c    *Client
	path string
}

// List fetches the collection. query narrows it with the server-side
// filters of the collection.
func (r Resource[T]) List(ctx context.Context, query map[string]string) ([]T, error) {
	var out []T
	resp, err := r.c.request(ctx).SetQueryParams(query).SetResult(&out).Get(r.path)
	if err := r.c.check(resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r Resource[T]) Get(ctx context.Context, id uint) (*T, error) {
	out := new(T)
	resp, err := r.c.request(ctx).SetResult(out).Get(r.itemPath(id))
	if err := r.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// Create stores rec and returns the persisted record with its id.
func (r Resource[T]) Create(ctx context.Context, rec T) (*T, error) {
	out := new(T)
	resp, err := r.c.request(ctx).SetBody(rec).SetResult(out).Post(r.path)
	if err := r.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the whole record.
func (r Resource[T]) Update(ctx context.Context, id uint, rec T) (*T, error) {
	out := new(T)
	resp, err := r.c.request(ctx).SetBody(rec).SetResult(out).Put(r.itemPath(id))
	if err := r.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r Resource[T]) Delete(ctx context.Context, id uint) error {
	resp, err := r.c.request(ctx).Delete(r.itemPath(id))
	return r.c.check(resp, err)
}

func (r Resource[T]) itemPath(id uint) string {
	return r.path + "/" + strconv.FormatUint(uint64(id), 10)
}

func (c *Client) Farms() Resource[entities.Farm] { return Resource[entities.Farm]{c, "/farms"} }

func (c *Client) Trenches() Resource[entities.Trench] {
	return Resource[entities.Trench]{c, "/trenches"}
}

func (c *Client) Harvests() Resource[entities.Harvest] {
	return Resource[entities.Harvest]{c, "/harvest"}
}

func (c *Client) TrenchControl() Resource[entities.TrenchControl] {
	return Resource[entities.TrenchControl]{c, "/trench_control"}
}

func (c *Client) Foss() Resource[entities.FossSample] {
	return Resource[entities.FossSample]{c, "/foss_data"}
}

func (c *Client) Sieve() Resource[entities.SieveSample] {
	return Resource[entities.SieveSample]{c, "/sieve"}
}

func (c *Client) Crops() Resource[entities.Crop] { return Resource[entities.Crop]{c, "/crops"} }

func (c *Client) Weather() Resource[entities.WeatherCondition] {
	return Resource[entities.WeatherCondition]{c, "/weather"}
}

func (c *Client) FossNorms() Resource[entities.CropFossNorm] {
	return Resource[entities.CropFossNorm]{c, "/foss_norms"}
}

func (c *Client) SieveNorms() Resource[entities.CropSieveNorm] {
	return Resource[entities.CropSieveNorm]{c, "/sieve_norms"}
}

func (c *Client) FossTemplates() Resource[entities.FossTemplate] {
	return Resource[entities.FossTemplate]{c, "/foss_norms_template"}
}

func (c *Client) SieveTemplates() Resource[entities.SieveTemplate] {
	return Resource[entities.SieveTemplate]{c, "/sieve_norms_template"}
}

func (c *Client) LabEntries() Resource[entities.LabEntry] {
	return Resource[entities.LabEntry]{c, "/lab_data"}
}

// TrenchControlForSeason lists the events of one season.
func (c *Client) TrenchControlForSeason(ctx context.Context, season int) ([]entities.TrenchControl, error) {
	return c.TrenchControl().List(ctx, map[string]string{"season": strconv.Itoa(season)})
}

// ApplyFossTemplate copies a template's limits into the crop's Foss norm.
func (c *Client) ApplyFossTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropFossNorm, error) {
	out := new(entities.CropFossNorm)
	resp, err := c.request(ctx).SetResult(out).Post(fmt.Sprintf("/crops/%d/apply_foss_template/%d", cropID, templateID))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApplySieveTemplate(ctx context.Context, cropID, templateID uint) (*entities.CropSieveNorm, error) {
	out := new(entities.CropSieveNorm)
	resp, err := c.request(ctx).SetResult(out).Post(fmt.Sprintf("/crops/%d/apply_sieve_template/%d", cropID, templateID))
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// TrenchControlReport fetches the server-side summaries of the selection.
func (c *Client) TrenchControlReport(ctx context.Context, sel aggregate.Selection) ([]aggregate.TrenchControlSummary, error) {
	var out []aggregate.TrenchControlSummary
	resp, err := c.request(ctx).SetQueryParams(selectionQuery(sel)).SetResult(&out).Get("/report/trench_control")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func selectionQuery(sel aggregate.Selection) map[string]string {
	q := map[string]string{}
	if sel.Season != nil {
		q["season"] = strconv.Itoa(*sel.Season)
	}
	if sel.FarmID != nil {
		q["farm_id"] = strconv.FormatUint(uint64(*sel.FarmID), 10)
	}
	if sel.TrenchID != nil {
		q["trench_id"] = strconv.FormatUint(uint64(*sel.TrenchID), 10)
	}
	return q
}

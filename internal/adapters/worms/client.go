// Package worms implements ports.LabelSource against the WoRMS REST API
// (World Register of Marine Species).
package worms

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/taxa/internal/build"
	"go.trai.ch/taxa/internal/core/domain"
	"go.trai.ch/taxa/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

const (
	tracerName   = "go.trai.ch/taxa/worms"
	statusAccept = "accepted"

	// maxErrorBody bounds how much of an error response is kept for the message.
	maxErrorBody = 512
)

var _ ports.LabelSource = (*Client)(nil)

// Client queries WoRMS. Requests share one rate limiter.
type Client struct {
	baseURL    string
	marineOnly bool
	http       *http.Client
	limiter    *rate.Limiter
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithTracerProvider sets the provider spans are created with.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cl *Client) {
		cl.tracer = tp.Tracer(tracerName)
	}
}

// WithLimiter replaces the limiter built from the settings.
func WithLimiter(l *rate.Limiter) Option {
	return func(cl *Client) {
		cl.limiter = l
	}
}

// NewClient creates a client for the configured lookup settings.
func NewClient(settings domain.LookupSettings, opts ...Option) *Client {
	limit := rate.Inf
	if settings.RatePerSecond > 0 {
		limit = rate.Limit(settings.RatePerSecond)
	}

	c := &Client{
		baseURL:    strings.TrimRight(settings.BaseURL, "/"),
		marineOnly: settings.MarineOnly,
		http:       &http.Client{Timeout: settings.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		tracer:     otel.Tracer(tracerName),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// aphiaRecord is the subset of a WoRMS AphiaRecord taxa uses.
type aphiaRecord struct {
	AphiaID        int64  `json:"AphiaID"`
	URL            string `json:"url"`
	ScientificName string `json:"scientificname"`
	Authority      string `json:"authority"`
	Status         string `json:"status"`
	Rank           string `json:"rank"`
}

// classification is one level of a nested WoRMS classification.
type classification struct {
	AphiaID        int64           `json:"AphiaID"`
	Rank           string          `json:"rank"`
	ScientificName string          `json:"scientificname"`
	Child          *classification `json:"child"`
}

// Search implements ports.LabelSource. Unaccepted names are dropped unless
// the query asks for them.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.ExternalLabel, error) {
	params := url.Values{}
	params.Set("like", "true")
	params.Set("marine_only", strconv.FormatBool(c.marineOnly))

	var records []aphiaRecord
	err := c.get(ctx, "search", "/AphiaRecordsByName/"+url.PathEscape(query.Query), params, &records,
		attribute.String("taxa.query", query.Query),
		attribute.Int64("taxa.label_source_id", query.SourceID),
		attribute.Bool("taxa.unaccepted", query.Unaccepted),
	)
	if err != nil {
		return nil, zerr.With(err, "query", query.Query)
	}

	results := make([]domain.ExternalLabel, 0, len(records))
	for _, r := range records {
		accepted := r.Status == statusAccept
		if !accepted && !query.Unaccepted {
			continue
		}
		results = append(results, domain.ExternalLabel{
			Name:      r.ScientificName,
			SourceID:  strconv.FormatInt(r.AphiaID, 10),
			Rank:      r.Rank,
			Status:    r.Status,
			Authority: r.Authority,
			URL:       r.URL,
			Accepted:  accepted,
		})
	}
	return results, nil
}

// Classification implements ports.LabelSource. The item itself is not part
// of the result.
func (c *Client) Classification(ctx context.Context, sourceID string) ([]domain.ClassificationNode, error) {
	var root classification
	err := c.get(ctx, "classification", "/AphiaClassificationByAphiaID/"+url.PathEscape(sourceID), nil, &root,
		attribute.String("taxa.source_id", sourceID),
	)
	if err != nil {
		return nil, zerr.With(err, "source_id", sourceID)
	}

	var chain []domain.ClassificationNode
	for node := &root; node != nil && node.AphiaID != 0; node = node.Child {
		id := strconv.FormatInt(node.AphiaID, 10)
		if id == sourceID {
			break
		}
		chain = append(chain, domain.ClassificationNode{
			Name:     node.ScientificName,
			SourceID: id,
			Rank:     node.Rank,
		})
	}
	return chain, nil
}

// get performs one rate limited, traced GET request and decodes the JSON
// body into target. 204 No Content leaves target untouched.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, target any, attrs ...attribute.KeyValue) (err error) {
	if id, ok := domain.RequestIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("taxa.request_id", id))
	}
	ctx, span := c.tracer.Start(ctx, "worms."+op, trace.WithAttributes(attrs...))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrLookupFailed.Error())
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return zerr.Wrap(err, domain.ErrLookupFailed.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "taxa/"+build.Version)

	resp, err := c.http.Do(req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrLookupFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := zerr.With(domain.ErrLookupStatus, "status", resp.StatusCode)
		if msg := strings.TrimSpace(string(body)); msg != "" {
			err = zerr.With(err, "body", msg)
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return zerr.Wrap(err, domain.ErrLookupDecodeFailed.Error())
	}
	return nil
}

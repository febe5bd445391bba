// Package catalog implements the HTTP client for the remote item catalog.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/sapphire-arches/mccraft/domain/catalog"
	"github.com/sapphire-arches/mccraft/infrastructure/observability"
	apperrors "github.com/sapphire-arches/mccraft/pkg/errors"
)

// User-visible failure messages. Every search failure collapses to exactly
// one of these strings (plus detail where noted); searches never surface raw
// transport errors to the user.
const (
	MsgTimeout      = "Network timeout while searching for items"
	MsgNetwork      = "Network error while searching for items"
	msgDecodePrefix = "Failed to decode search results: "
	msgBadURLPrefix = "Bad search URL: "
	msgStatusFormat = "Item search failed with status %d"
)

const searchPath = "/search.json"

// Client queries the remote item catalog's search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
	metrics    *observability.Collector
}

// NewClient creates a catalog client against the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, metrics *observability.Collector) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "catalog-search",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
		},
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		logger:     logger,
		metrics:    metrics,
	}
}

// Search queries the catalog for items matching the term and decodes the
// response. Failures are classified into the application error taxonomy and
// carry a user-displayable message.
func (c *Client) Search(ctx context.Context, term string) ([]catalog.Item, error) {
	start := time.Now()
	items, err := c.search(ctx, term)
	c.observe(start, err)

	if err != nil {
		c.logger.Warn("Catalog search failed",
			zap.String("term", term),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("Catalog search succeeded",
		zap.String("term", term),
		zap.Int("results", len(items)),
	)
	return items, nil
}

func (c *Client) search(ctx context.Context, term string) ([]catalog.Item, error) {
	endpoint, err := url.Parse(c.baseURL + searchPath)
	if err != nil {
		return nil, badURLError(err)
	}
	q := endpoint.Query()
	q.Set("q", term)
	endpoint.RawQuery = q.Encode()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doSearch(ctx, endpoint.String())
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return nil, apperrors.NewUnavailableError(MsgNetwork).WithCause(err)
		default:
			return nil, err
		}
	}

	return result.([]catalog.Item), nil
}

func (c *Client) doSearch(ctx context.Context, fullURL string) ([]catalog.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, badURLError(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewExternalError(fmt.Sprintf(msgStatusFormat, resp.StatusCode))
	}

	var items []catalog.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, apperrors.NewDecodeError(msgDecodePrefix + err.Error()).WithCause(err)
	}

	return items, nil
}

func badURLError(err error) *apperrors.AppError {
	return apperrors.NewValidationError(msgBadURLPrefix + err.Error()).WithCause(err)
}

func classifyTransportError(err error) *apperrors.AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(MsgTimeout).WithCause(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.NewTimeoutError(MsgTimeout).WithCause(err)
	}
	return apperrors.NewNetworkError(MsgNetwork).WithCause(err)
}

func (c *Client) observe(start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.SearchDuration.Observe(time.Since(start).Seconds())
	c.metrics.SearchRequests.WithLabelValues(searchOutcome(err)).Inc()
}

func searchOutcome(err error) string {
	if err == nil {
		return observability.SearchOutcomeOK
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeTimeout:
			return observability.SearchOutcomeTimeout
		case apperrors.ErrorTypeDecode:
			return observability.SearchOutcomeDecode
		case apperrors.ErrorTypeExternal:
			return observability.SearchOutcomeStatus
		case apperrors.ErrorTypeValidation:
			return observability.SearchOutcomeBadURL
		}
	}
	return observability.SearchOutcomeNetwork
}

package pricefeed

import (
	"context"
	"fmt"
	"time"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultURL is the public feed of the latest known USD price per currency.
const DefaultURL = "https://interview.switcheo.com/prices.json"

// clientImpl is the fasthttp implementation of port.PriceFeedClient.
type clientImpl struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
	logger  *zap.Logger
}

// Option customizes the client.
type Option func(*clientImpl)

// WithHTTPClient replaces the underlying fasthttp client.
func WithHTTPClient(c *fasthttp.Client) Option {
	return func(impl *clientImpl) {
		impl.client = c
	}
}

// NewClient creates a price feed client reading url. timeout applies when the
// request context carries no deadline.
func NewClient(url string, timeout time.Duration, logger *zap.Logger, opts ...Option) port.PriceFeedClient {
	if url == "" {
		url = DefaultURL
	}
	c := &clientImpl{
		client:  &fasthttp.Client{},
		url:     url,
		timeout: timeout,
		logger:  logger.Named("PriceFeedClient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchQuotes implements port.PriceFeedClient.
func (c *clientImpl) FetchQuotes(ctx context.Context) ([]entity.PriceQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.Debug("Requesting price feed", zap.String("url", c.url))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			c.logger.Error("Failed to execute request to price feed", zap.String("url", c.url), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s: %w", c.url, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			c.logger.Error("Failed to execute request to price feed (with default timeout)", zap.String("url", c.url), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", c.url, err)
		}
	}

	rawBody := resp.Body()

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Price feed request failed",
			zap.String("url", c.url),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody),
		)
		return nil, fmt.Errorf("price feed request to %s failed with status %d: %s", c.url, resp.StatusCode(), string(rawBody))
	}

	var quotes []entity.PriceQuote
	if err := json.Unmarshal(rawBody, &quotes); err != nil {
		c.logger.Error("Failed to unmarshal price feed response",
			zap.String("url", c.url),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to unmarshal price feed response from %s: %w", c.url, err)
	}

	if len(quotes) == 0 {
		c.logger.Warn("Price feed returned 200 OK with an empty list", zap.String("url", c.url))
	}

	c.logger.Debug("Fetched price feed", zap.Int("quoteCount", len(quotes)))
	return quotes, nil
}

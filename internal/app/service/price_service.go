package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"balance_ranker/internal/app/port"
	"balance_ranker/internal/domain/entity"
	"balance_ranker/internal/pkg/metrics"
)

// priceServiceImpl implements port.PriceService on top of the public price feed.
type priceServiceImpl struct {
	feed    port.PriceFeedClient
	logger  port.Logger
	metrics *metrics.Metrics
}

// NewPriceService creates a new instance of priceServiceImpl.
func NewPriceService(feed port.PriceFeedClient, l port.Logger, m *metrics.Metrics) port.PriceService {
	return &priceServiceImpl{
		feed:    feed,
		logger:  l.With("component", "PriceService"),
		metrics: m,
	}
}

// Currencies implements port.PriceService.
func (s *priceServiceImpl) Currencies(ctx context.Context) ([]entity.PriceQuote, error) {
	start := time.Now()
	quotes, err := s.feed.FetchQuotes(ctx)
	s.metrics.ObservePriceFeed(time.Since(start), err)
	if err != nil {
		s.logger.Error("Failed to fetch price feed", "error", err)
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}

	usable := make([]entity.PriceQuote, 0, len(quotes))
	for _, q := range quotes {
		if q.Currency == "" || !entity.IsUsablePrice(q.Price) {
			s.logger.Warn("Discarding unusable price quote", "currency", q.Currency, "price", q.Price, "date", q.Date)
			continue
		}
		usable = append(usable, q)
	}

	deduped := DedupeQuotes(usable)
	s.logger.Debug("Price feed loaded", "received", len(quotes), "currencies", len(deduped))
	return deduped, nil
}

// PriceTable implements port.PriceSource.
func (s *priceServiceImpl) PriceTable(ctx context.Context) (entity.PriceTable, error) {
	quotes, err := s.Currencies(ctx)
	if err != nil {
		return nil, err
	}
	table := make(entity.PriceTable, len(quotes))
	for _, q := range quotes {
		table[q.Currency] = q.Price
	}
	return table, nil
}

// DedupeQuotes keeps one quote per currency, the one with the latest date, and
// returns them ordered by currency symbol. A quote whose date does not parse loses
// against any parsable one; on equal dates the first quote seen wins.
func DedupeQuotes(quotes []entity.PriceQuote) []entity.PriceQuote {
	type candidate struct {
		quote  entity.PriceQuote
		at     time.Time
		parsed bool
	}

	latest := make(map[string]candidate, len(quotes))
	for _, q := range quotes {
		at, err := time.Parse(time.RFC3339Nano, q.Date)
		next := candidate{quote: q, at: at, parsed: err == nil}

		current, seen := latest[q.Currency]
		switch {
		case !seen:
			latest[q.Currency] = next
		case next.parsed && !current.parsed:
			latest[q.Currency] = next
		case next.parsed && current.parsed && next.at.After(current.at):
			latest[q.Currency] = next
		}
	}

	out := make([]entity.PriceQuote, 0, len(latest))
	for _, c := range latest {
		out = append(out, c.quote)
	}
	slices.SortFunc(out, func(a, b entity.PriceQuote) int {
		return strings.Compare(a.Currency, b.Currency)
	})
	return out
}

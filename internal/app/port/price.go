package port

import (
	"context"

	"balance_ranker/internal/domain/entity"
)

// PriceFeedClient fetches raw quotes from the public price feed.
type PriceFeedClient interface {
	FetchQuotes(ctx context.Context) ([]entity.PriceQuote, error)
}

// PriceSource yields the price table fed into the ranking pipeline.
type PriceSource interface {
	PriceTable(ctx context.Context) (entity.PriceTable, error)
}

// PriceService exposes the deduplicated price list alongside the price table.
type PriceService interface {
	PriceSource
	// Currencies returns one quote per currency, the most recent one, ordered by symbol.
	Currencies(ctx context.Context) ([]entity.PriceQuote, error)
}

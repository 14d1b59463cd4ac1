package port

import (
	"context"

	"balance_ranker/internal/domain/entity"
)

// RankingService produces the ranked, valued balance view.
type RankingService interface {
	RankedView(ctx context.Context) (entity.RankedView, error)
}

// SwapService prices swaps between currencies held in the wallet.
type SwapService interface {
	Quote(ctx context.Context, req entity.SwapRequest) (entity.SwapQuote, error)
}

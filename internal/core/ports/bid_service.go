package ports

import (
	"context"

	"github.com/jobhive/market-system/internal/core/domain"
)

type BidService interface {
	List(ctx context.Context, f BidFilter) ([]domain.Bid, error)
	// Place inserts a bid unless the bidder already has one for the same
	// job, in which case it fails with domain.ErrDuplicateBid.
	Place(ctx context.Context, bid domain.Bid) (*InsertResult, error)
	Update(ctx context.Context, id string, bid domain.Bid) (*UpdateResult, error)
}

package ports

import (
	"context"

	"github.com/jobhive/market-system/internal/core/domain"
)

// BidFilter narrows bid listings. Zero value matches everything; the
// compiler sets at most one field.
type BidFilter struct {
	BidderEmail string // non-empty: email equality
	BuyerEmail  string // non-empty: buyer_email equality
}

// BidRepository defines persistence operations for bids.
type BidRepository interface {
	Find(ctx context.Context, f BidFilter) ([]domain.Bid, error)
	// FindByBidderAndJob fetches the bid a bidder already placed on a job,
	// or domain.ErrBidNotFound when none exists.
	FindByBidderAndJob(ctx context.Context, email, jobID string) (*domain.Bid, error)
	Insert(ctx context.Context, bid domain.Bid) (*InsertResult, error)
	// Update merges the submitted non-id fields of bid into the record with
	// the given id, inserting when absent. Fields the body omitted are left
	// as stored.
	Update(ctx context.Context, id string, bid domain.Bid) (*UpdateResult, error)
}

package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jobhive/market-system/internal/api/metrics"
	"github.com/jobhive/market-system/internal/core/domain"
	"github.com/jobhive/market-system/internal/core/ports"
)

// BidService implements the bid use-cases, including the
// one-bid-per-(bidder, job) guard applied on placement.
type BidService struct {
	repo   ports.BidRepository
	logger zerolog.Logger
}

func NewBidService(repo ports.BidRepository, logger zerolog.Logger) *BidService {
	return &BidService{repo: repo, logger: logger}
}

func (s *BidService) List(ctx context.Context, f ports.BidFilter) ([]domain.Bid, error) {
	bids, err := s.repo.Find(ctx, f)
	if err != nil {
		s.logger.Error().Err(err).Msg("bid listing failed")
		return nil, err
	}
	return bids, nil
}

// Place inserts a bid unless the bidder already applied to the job. The
// lookup and the insert are two separate store operations: two concurrent
// submissions from the same bidder can both pass the check and both insert.
// That window is accepted; the (email, job_id) index is deliberately
// non-unique.
func (s *BidService) Place(ctx context.Context, bid domain.Bid) (*ports.InsertResult, error) {
	existing, err := s.repo.FindByBidderAndJob(ctx, bid.Email, bid.JobID)
	if err != nil && !errors.Is(err, domain.ErrBidNotFound) {
		return nil, err
	}
	if existing != nil {
		metrics.BidsRejectedTotal.WithLabelValues("duplicate").Inc()
		s.logger.Info().Str("email", bid.Email).Str("job_id", bid.JobID).Msg("duplicate bid rejected")
		return nil, domain.ErrDuplicateBid
	}

	res, err := s.repo.Insert(ctx, bid)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to place bid")
		return nil, err
	}

	metrics.BidsPlacedTotal.Inc()
	s.logger.Info().Str("bid_id", res.InsertedID).Str("email", bid.Email).Str("job_id", bid.JobID).Msg("bid placed")
	return res, nil
}

func (s *BidService) Update(ctx context.Context, id string, bid domain.Bid) (*ports.UpdateResult, error) {
	res, err := s.repo.Update(ctx, id, bid)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("bid_id", id).Int64("matched", res.MatchedCount).Msg("bid updated")
	return res, nil
}

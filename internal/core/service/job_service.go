package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobhive/market-system/internal/api/metrics"
	"github.com/jobhive/market-system/internal/core/domain"
	"github.com/jobhive/market-system/internal/core/ports"
)

// JobService implements the job posting use-cases over an injected
// repository. It carries no state of its own; every call resolves freshly
// against the store.
type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) Search(ctx context.Context, q ports.JobQuery) ([]domain.Job, error) {
	jobs, err := s.repo.Find(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Msg("public job search failed")
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) List(ctx context.Context, f ports.JobFilter) ([]domain.Job, error) {
	jobs, err := s.repo.Find(ctx, ports.JobQuery{Filter: f})
	if err != nil {
		s.logger.Error().Err(err).Msg("job listing failed")
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) Create(ctx context.Context, job domain.Job) (*ports.InsertResult, error) {
	res, err := s.repo.Insert(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.logger.Info().Str("job_id", res.InsertedID).Str("buyer_email", job.BuyerEmail).Msg("job created")
	return res, nil
}

func (s *JobService) Replace(ctx context.Context, id string, job domain.Job) (*ports.UpdateResult, error) {
	res, err := s.repo.Replace(ctx, id, job)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", id).Int64("matched", res.MatchedCount).Msg("job replaced")
	return res, nil
}

func (s *JobService) Delete(ctx context.Context, id string) (*ports.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.JobsDeletedTotal.Inc()
	s.logger.Info().Str("job_id", id).Int64("deleted", res.DeletedCount).Msg("job deleted")
	return res, nil
}

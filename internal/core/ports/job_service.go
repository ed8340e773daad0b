package ports

import (
	"context"

	"github.com/jobhive/market-system/internal/core/domain"
)

type JobService interface {
	// Search serves the public listing: compiled filter, optional deadline
	// sort, pagination window.
	Search(ctx context.Context, q JobQuery) ([]domain.Job, error)
	// List serves the authenticated listing with an owner-scoped filter.
	List(ctx context.Context, f JobFilter) ([]domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, job domain.Job) (*InsertResult, error)
	Replace(ctx context.Context, id string, job domain.Job) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

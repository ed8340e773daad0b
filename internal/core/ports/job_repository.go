package ports

import (
	"context"

	"github.com/jobhive/market-system/internal/core/domain"
)

// SortOrder selects the deadline ordering applied to public job searches.
// The values double as the store-level sort direction.
type SortOrder int

const (
	SortNone         SortOrder = 0
	SortDeadlineAsc  SortOrder = 1
	SortDeadlineDesc SortOrder = -1
)

// JobFilter is a compiled conjunction of record conditions. Zero value
// matches everything. At most one of the equality fields is set by the
// owner-scoped compiler; the public compiler combines TitleMatch with an
// optional Category.
type JobFilter struct {
	BuyerEmail string // non-empty: buyer_email equality
	Category   string // non-empty: category equality
	Title      string // substring pattern, only consulted when TitleMatch is set
	TitleMatch bool   // case-insensitive title substring; empty Title matches all
}

// JobQuery bundles a filter with ordering and a pagination window.
type JobQuery struct {
	Filter JobFilter
	Sort   SortOrder
	Skip   int64
	Limit  int64 // 0 = unlimited
}

// JobRepository defines persistence operations for job postings.
// Operations taking an id fail with domain.ErrMalformedID before any store
// call when the id is not a well-formed identifier token.
type JobRepository interface {
	Find(ctx context.Context, q JobQuery) ([]domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	Insert(ctx context.Context, job domain.Job) (*InsertResult, error)
	// Replace applies the non-id fields of job to the record with the given
	// id, inserting when absent.
	Replace(ctx context.Context, id string, job domain.Job) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}

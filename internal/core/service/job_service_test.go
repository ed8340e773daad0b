package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobhive/market-system/internal/core/domain"
	"github.com/jobhive/market-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubJobRepo struct {
	jobs      map[string]domain.Job
	lastQuery ports.JobQuery
	findErr   error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]domain.Job)}
}

// Find applies the same filter semantics the real Mongo repo would use.
func (r *stubJobRepo) Find(_ context.Context, q ports.JobQuery) ([]domain.Job, error) {
	r.lastQuery = q
	if r.findErr != nil {
		return nil, r.findErr
	}

	var matched []domain.Job
	for _, j := range r.jobs {
		f := q.Filter
		if f.BuyerEmail != "" && j.BuyerEmail != f.BuyerEmail {
			continue
		}
		if f.Category != "" && j.Category != f.Category {
			continue
		}
		if f.TitleMatch && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(f.Title)) {
			continue
		}
		matched = append(matched, j)
	}
	return matched, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := j
	return &clone, nil
}

func (r *stubJobRepo) Insert(_ context.Context, job domain.Job) (*ports.InsertResult, error) {
	job.ID = primitive.NewObjectID()
	r.jobs[job.ID.Hex()] = job
	return &ports.InsertResult{Acknowledged: true, InsertedID: job.ID.Hex()}, nil
}

func (r *stubJobRepo) Replace(_ context.Context, id string, job domain.Job) (*ports.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}
	_, existed := r.jobs[id]
	job.ID = oid
	r.jobs[id] = job
	if existed {
		return &ports.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &ports.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) (*ports.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrMalformedID
	}
	if _, ok := r.jobs[id]; !ok {
		return &ports.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.jobs, id)
	return &ports.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func testJob(buyer, title, category string) domain.Job {
	return domain.Job{
		BuyerEmail: buyer,
		Title:      title,
		Category:   category,
		Deadline:   "2026-10-01",
		Extra:      map[string]any{"min_price": 100},
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestJobService_CreateAndGet(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, discardLogger)

	res, err := svc.Create(context.Background(), testJob("a@x.com", "Build a logo", "design"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.InsertedID == "" {
		t.Fatal("expected a store-generated id")
	}

	job, err := svc.Get(context.Background(), res.InsertedID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job.Title != "Build a logo" || job.Extra["min_price"] != 100 {
		t.Errorf("stored job mangled: %+v", job)
	}
}

func TestJobService_Get_MalformedID(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), discardLogger)

	_, err := svc.Get(context.Background(), "not-an-id")
	if !errors.Is(err, domain.ErrMalformedID) {
		t.Fatalf("expected ErrMalformedID, got %v", err)
	}
}

func TestJobService_Get_NotFound(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), discardLogger)

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_List_PassesFilterThrough(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, discardLogger)
	_, _ = svc.Create(context.Background(), testJob("a@x.com", "Logo", "design"))
	_, _ = svc.Create(context.Background(), testJob("b@x.com", "API", "web"))

	jobs, err := svc.List(context.Background(), ports.JobFilter{BuyerEmail: "a@x.com"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 || jobs[0].BuyerEmail != "a@x.com" {
		t.Errorf("unexpected listing: %+v", jobs)
	}
	if repo.lastQuery.Filter.BuyerEmail != "a@x.com" {
		t.Errorf("filter not forwarded: %+v", repo.lastQuery)
	}
	if repo.lastQuery.Sort != ports.SortNone || repo.lastQuery.Limit != 0 {
		t.Errorf("owner listing must not sort or paginate: %+v", repo.lastQuery)
	}
}

func TestJobService_Search_ForwardsWindowAndSort(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, discardLogger)

	q := ports.JobQuery{
		Filter: ports.JobFilter{TitleMatch: true, Title: "logo"},
		Sort:   ports.SortDeadlineAsc,
		Skip:   5,
		Limit:  5,
	}
	if _, err := svc.Search(context.Background(), q); err != nil {
		t.Fatalf("search: %v", err)
	}
	if repo.lastQuery != q {
		t.Errorf("query not forwarded verbatim: %+v", repo.lastQuery)
	}
}

func TestJobService_Replace_Upserts(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, discardLogger)

	id := primitive.NewObjectID().Hex()
	res, err := svc.Replace(context.Background(), id, testJob("a@x.com", "Logo", "design"))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if res.UpsertedCount != 1 {
		t.Errorf("expected upsert on absent record, got %+v", res)
	}

	res, err = svc.Replace(context.Background(), id, testJob("a@x.com", "Logo v2", "design"))
	if err != nil {
		t.Fatalf("second replace: %v", err)
	}
	if res.MatchedCount != 1 {
		t.Errorf("expected match on existing record, got %+v", res)
	}
}

func TestJobService_Delete(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, discardLogger)

	res, _ := svc.Create(context.Background(), testJob("a@x.com", "Logo", "design"))

	del, err := svc.Delete(context.Background(), res.InsertedID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if del.DeletedCount != 1 {
		t.Errorf("expected one deletion, got %+v", del)
	}

	if _, err := svc.Get(context.Background(), res.InsertedID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("job must be gone, got %v", err)
	}
}

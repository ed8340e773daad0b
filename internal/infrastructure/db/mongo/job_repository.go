package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobhive/market-system/internal/core/domain"
	"github.com/jobhive/market-system/internal/core/ports"
)

const collectionJobs = "market_jobs"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

// jobFilterToBson translates a compiled filter into its store predicate.
// Pattern metacharacters in the title search are quoted so the match stays
// a literal substring match.
func jobFilterToBson(f ports.JobFilter) bson.M {
	filter := bson.M{}
	if f.TitleMatch {
		filter["job_title"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Title), Options: "i"}
	}
	if f.BuyerEmail != "" {
		filter["buyer_email"] = f.BuyerEmail
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	return filter
}

func findOptions(q ports.JobQuery) *options.FindOptions {
	opts := options.Find()
	if q.Sort != ports.SortNone {
		opts.SetSort(bson.D{{Key: "deadline", Value: int(q.Sort)}})
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return opts
}

func (r *JobRepository) Find(ctx context.Context, q ports.JobQuery) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, jobFilterToBson(q.Filter), findOptions(q))
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}

	jobs := []domain.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

// FindByID validates the id token before building the lookup key; a
// malformed id never reaches the store.
func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var job domain.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) Insert(ctx context.Context, job domain.Job) (*ports.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// The store generates the identity.
	job.ID = primitive.NilObjectID
	res, err := r.col.InsertOne(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return toInsertResult(res), nil
}

// Replace applies the non-id fields of job to the record with the given id,
// inserting it when absent. The id field of the incoming document is
// discarded: record identity is immutable after creation.
func (r *JobRepository) Replace(ctx context.Context, id string, job domain.Job) (*ports.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	job.ID = primitive.NilObjectID
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": job}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("replace job: %w", err)
	}
	return toUpdateResult(res), nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) (*ports.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete job: %w", err)
	}
	return toDeleteResult(res), nil
}

// EnsureIndexes creates the lookup indexes on the jobs collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "buyer_email", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "deadline", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

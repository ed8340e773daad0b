package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobhive/market-system/internal/core/domain"
	"github.com/jobhive/market-system/internal/core/ports"
)

const collectionBids = "market_bids"

type BidRepository struct {
	col *mongo.Collection
}

func NewBidRepository(db *mongo.Database) *BidRepository {
	return &BidRepository{col: db.Collection(collectionBids)}
}

func bidFilterToBson(f ports.BidFilter) bson.M {
	filter := bson.M{}
	if f.BidderEmail != "" {
		filter["email"] = f.BidderEmail
	}
	if f.BuyerEmail != "" {
		filter["buyer_email"] = f.BuyerEmail
	}
	return filter
}

func (r *BidRepository) Find(ctx context.Context, f ports.BidFilter) ([]domain.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bidFilterToBson(f))
	if err != nil {
		return nil, fmt.Errorf("find bids: %w", err)
	}

	bids := []domain.Bid{}
	if err := cur.All(ctx, &bids); err != nil {
		return nil, fmt.Errorf("decode bids: %w", err)
	}
	return bids, nil
}

// FindByBidderAndJob fetches the bid a bidder already placed on a job.
func (r *BidRepository) FindByBidderAndJob(ctx context.Context, email, jobID string) (*domain.Bid, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var bid domain.Bid
	err := r.col.FindOne(ctx, bson.M{"email": email, "job_id": jobID}).Decode(&bid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBidNotFound
		}
		return nil, fmt.Errorf("find bid: %w", err)
	}
	return &bid, nil
}

func (r *BidRepository) Insert(ctx context.Context, bid domain.Bid) (*ports.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	bid.ID = primitive.NilObjectID
	res, err := r.col.InsertOne(ctx, bid)
	if err != nil {
		return nil, fmt.Errorf("insert bid: %w", err)
	}
	return toInsertResult(res), nil
}

// bidSetDocument builds the $set document for a partial update: only the
// fields the request body carried. Omitted typed fields stay untouched in
// the stored record; a struct marshal would reset them to "".
func bidSetDocument(bid domain.Bid) bson.M {
	set := bson.M{}
	for k, v := range bid.Extra {
		set[k] = v
	}
	if bid.Submitted("email") {
		set["email"] = bid.Email
	}
	if bid.Submitted("job_id") {
		set["job_id"] = bid.JobID
	}
	if bid.Submitted("buyer_email") {
		set["buyer_email"] = bid.BuyerEmail
	}
	return set
}

// Update merges the submitted non-id fields of bid into the record with the
// given id, inserting it when absent. Fields absent from the body are
// preserved.
func (r *BidRepository) Update(ctx context.Context, id string, bid domain.Bid) (*ports.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMalformedID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bidSetDocument(bid)}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("update bid: %w", err)
	}
	return toUpdateResult(res), nil
}

// EnsureIndexes creates the lookup indexes on the bids collection. The
// (email, job_id) index backs the duplicate-placement lookup and is NOT
// unique: the guard stays a best-effort read-before-write.
func (r *BidRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "job_id", Value: 1}}},
		{Keys: bson.D{{Key: "buyer_email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

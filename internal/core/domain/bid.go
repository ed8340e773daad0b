package domain

import (
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrBidNotFound = errors.New("bid not found")
var ErrDuplicateBid = errors.New("bid already placed for this job")

// Bid is a bidder's application to a job posting. BuyerEmail is denormalized
// from the job at submission time; JobID is a plain foreign-key string, never
// a live reference. Amount, proposal and any other fields ride in Extra.
type Bid struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email" validate:"required,email"`
	JobID      string             `bson:"job_id" validate:"required"`
	BuyerEmail string             `bson:"buyer_email"`
	Extra      map[string]any     `bson:",inline"`

	// submitted records which wire keys the decoded body actually carried,
	// so partial updates can distinguish an omitted field from an empty one.
	submitted map[string]bool
}

// Submitted reports whether the named wire field was present in the body
// this bid was decoded from. Always false for bids built in code.
func (b Bid) Submitted(field string) bool {
	return b.submitted[field]
}

func (b Bid) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(b.Extra)+4)
	for k, v := range b.Extra {
		doc[k] = v
	}
	if !b.ID.IsZero() {
		doc["_id"] = b.ID.Hex()
	}
	doc["email"] = b.Email
	doc["job_id"] = b.JobID
	doc["buyer_email"] = b.BuyerEmail
	return json.Marshal(doc)
}

func (b *Bid) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.submitted = make(map[string]bool, len(raw))
	for k := range raw {
		b.submitted[k] = true
	}
	b.ID = popObjectID(raw)
	b.Email = popString(raw, "email")
	b.JobID = popString(raw, "job_id")
	b.BuyerEmail = popString(raw, "buyer_email")
	b.Extra = raw
	return nil
}

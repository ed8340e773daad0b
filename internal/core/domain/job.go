package domain

import (
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrJobNotFound = errors.New("job not found")
var ErrMalformedID = errors.New("malformed id")

// Job is a marketplace posting. The typed fields are the ones the API
// filters and sorts on; everything else a buyer submits travels in Extra so
// documents round-trip through the store unmodified.
type Job struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BuyerEmail string             `bson:"buyer_email"`
	Title      string             `bson:"job_title"`
	Category   string             `bson:"category"`
	Deadline   string             `bson:"deadline"`
	Extra      map[string]any     `bson:",inline"`
}

// MarshalJSON flattens Extra next to the typed fields, producing the same
// document shape clients stored.
func (j Job) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(j.Extra)+5)
	for k, v := range j.Extra {
		doc[k] = v
	}
	if !j.ID.IsZero() {
		doc["_id"] = j.ID.Hex()
	}
	doc["buyer_email"] = j.BuyerEmail
	doc["job_title"] = j.Title
	doc["category"] = j.Category
	doc["deadline"] = j.Deadline
	return json.Marshal(doc)
}

// UnmarshalJSON splits a flat document into typed fields plus Extra. Any
// "_id" key is consumed here: the record id is immutable once created and
// never taken from a request body's field bag.
func (j *Job) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	j.ID = popObjectID(raw)
	j.BuyerEmail = popString(raw, "buyer_email")
	j.Title = popString(raw, "job_title")
	j.Category = popString(raw, "category")
	j.Deadline = popString(raw, "deadline")
	j.Extra = raw
	return nil
}

func popString(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	delete(raw, key)
	return s
}

func popObjectID(raw map[string]any) primitive.ObjectID {
	defer delete(raw, "_id")
	s, ok := raw["_id"].(string)
	if !ok {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

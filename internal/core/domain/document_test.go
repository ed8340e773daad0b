package domain

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJob_UnmarshalSplitsKnownAndExtraFields(t *testing.T) {
	payload := `{
		"buyer_email": "a@x.com",
		"job_title": "Build a logo",
		"category": "design",
		"deadline": "2026-10-01",
		"min_price": 100,
		"description": "vector formats please"
	}`

	var job Job
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if job.BuyerEmail != "a@x.com" || job.Title != "Build a logo" || job.Category != "design" {
		t.Errorf("known fields not extracted: %+v", job)
	}
	if job.Extra["min_price"] != float64(100) || job.Extra["description"] != "vector formats please" {
		t.Errorf("extra fields lost: %+v", job.Extra)
	}
	if _, ok := job.Extra["job_title"]; ok {
		t.Error("known fields must not duplicate into Extra")
	}
}

func TestJob_UnmarshalConsumesID(t *testing.T) {
	oid := primitive.NewObjectID()

	var job Job
	if err := json.Unmarshal([]byte(`{"_id":"`+oid.Hex()+`","job_title":"x"}`), &job); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if job.ID != oid {
		t.Errorf("expected id %s, got %s", oid.Hex(), job.ID.Hex())
	}
	if _, ok := job.Extra["_id"]; ok {
		t.Error("_id must never survive in the field bag")
	}

	// A malformed id is discarded rather than erroring: record identity is
	// only ever taken from the URL, not the body.
	var job2 Job
	if err := json.Unmarshal([]byte(`{"_id":"not-an-id","job_title":"x"}`), &job2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !job2.ID.IsZero() {
		t.Errorf("malformed _id must be dropped, got %s", job2.ID.Hex())
	}
	if _, ok := job2.Extra["_id"]; ok {
		t.Error("_id must never survive in the field bag")
	}
}

func TestJob_MarshalFlattensExtra(t *testing.T) {
	oid := primitive.NewObjectID()
	job := Job{
		ID:         oid,
		BuyerEmail: "a@x.com",
		Title:      "Build a logo",
		Category:   "design",
		Deadline:   "2026-10-01",
		Extra:      map[string]any{"min_price": 100},
	}

	data, err := json.Marshal(job)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if doc["_id"] != oid.Hex() {
		t.Errorf("id must serialize as hex, got %v", doc["_id"])
	}
	if doc["job_title"] != "Build a logo" || doc["min_price"] != float64(100) {
		t.Errorf("flattened document wrong: %v", doc)
	}
	if _, ok := doc["Extra"]; ok {
		t.Error("Extra must flatten, not nest")
	}
}

func TestBid_RoundTripKeepsWireNames(t *testing.T) {
	payload := `{"email":"b@x.com","job_id":"J1","buyer_email":"a@x.com","amount":120,"proposal":"two weeks"}`

	var bid Bid
	if err := json.Unmarshal([]byte(payload), &bid); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if bid.Email != "b@x.com" || bid.JobID != "J1" || bid.BuyerEmail != "a@x.com" {
		t.Errorf("known fields not extracted: %+v", bid)
	}

	data, err := json.Marshal(bid)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if doc["job_id"] != "J1" || doc["amount"] != float64(120) || doc["proposal"] != "two weeks" {
		t.Errorf("round trip mangled document: %v", doc)
	}
	if _, ok := doc["_id"]; ok {
		t.Error("zero id must be omitted")
	}
}

func TestBid_SubmittedTracksBodyKeys(t *testing.T) {
	var bid Bid
	if err := json.Unmarshal([]byte(`{"amount":150,"email":""}`), &bid); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !bid.Submitted("amount") || !bid.Submitted("email") {
		t.Errorf("present keys not tracked: %+v", bid)
	}
	if bid.Submitted("job_id") || bid.Submitted("buyer_email") {
		t.Error("omitted keys must not count as submitted")
	}

	if (Bid{Email: "b@x.com"}).Submitted("email") {
		t.Error("bids built in code carry no submitted keys")
	}
}

func TestClaims_Email(t *testing.T) {
	if (Claims{"email": "a@x.com"}).Email() != "a@x.com" {
		t.Error("email claim not returned")
	}
	if (Claims{}).Email() != "" {
		t.Error("missing claim must yield empty string")
	}
	if (Claims{"email": 42}).Email() != "" {
		t.Error("non-string claim must yield empty string")
	}
}

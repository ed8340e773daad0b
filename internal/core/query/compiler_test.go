package query

import (
	"net/url"
	"testing"

	"github.com/jobhive/market-system/internal/core/ports"
)

func TestPublicJobSearch_Defaults(t *testing.T) {
	q := PublicJobSearch(url.Values{})

	if !q.Filter.TitleMatch || q.Filter.Title != "" {
		t.Errorf("expected empty match-all title filter, got %+v", q.Filter)
	}
	if q.Filter.Category != "" {
		t.Errorf("expected no category filter, got %q", q.Filter.Category)
	}
	if q.Sort != ports.SortNone {
		t.Errorf("expected store-default order, got %d", q.Sort)
	}
	if q.Skip != 0 || q.Limit != 0 {
		t.Errorf("expected zero window, got skip=%d limit=%d", q.Skip, q.Limit)
	}
}

func TestPublicJobSearch_CategoryAndsOntoTitle(t *testing.T) {
	q := PublicJobSearch(url.Values{"search": {"logo"}, "filter": {"design"}})

	if q.Filter.Title != "logo" || !q.Filter.TitleMatch {
		t.Errorf("title filter lost: %+v", q.Filter)
	}
	if q.Filter.Category != "design" {
		t.Errorf("category not ANDed on: %+v", q.Filter)
	}
}

func TestPublicJobSearch_SortToggle(t *testing.T) {
	cases := []struct {
		sort string
		want ports.SortOrder
	}{
		{"", ports.SortNone},
		{"Asc", ports.SortDeadlineAsc},
		{"Dsc", ports.SortDeadlineDesc},
		{"anything", ports.SortDeadlineDesc},
	}
	for _, tc := range cases {
		values := url.Values{}
		if tc.sort != "" {
			values.Set("sort", tc.sort)
		}
		if got := PublicJobSearch(values).Sort; got != tc.want {
			t.Errorf("sort=%q: expected %d, got %d", tc.sort, tc.want, got)
		}
	}
}

func TestPublicJobSearch_SortIsDeterministic(t *testing.T) {
	values := url.Values{"sort": {"Asc"}, "search": {"web"}}
	first := PublicJobSearch(values)
	second := PublicJobSearch(values)
	if first != second {
		t.Errorf("identical input compiled differently: %+v vs %+v", first, second)
	}
}

func TestPublicJobSearch_PaginationWindow(t *testing.T) {
	q := PublicJobSearch(url.Values{"page": {"1"}, "number": {"5"}})

	if q.Skip != 5 {
		t.Errorf("expected skip 5, got %d", q.Skip)
	}
	if q.Limit != 5 {
		t.Errorf("expected limit 5, got %d", q.Limit)
	}
}

func TestPublicJobSearch_MalformedPaginationCoercesToZero(t *testing.T) {
	for _, values := range []url.Values{
		{"page": {"abc"}, "number": {"xyz"}},
		{"page": {"-1"}, "number": {"-5"}},
		{},
	} {
		q := PublicJobSearch(values)
		if q.Skip != 0 || q.Limit != 0 {
			t.Errorf("values %v: expected zero window, got skip=%d limit=%d", values, q.Skip, q.Limit)
		}
	}
}

func TestOwnerJobFilter_EmailWinsOverCategory(t *testing.T) {
	f := OwnerJobFilter(url.Values{"email": {"a@x.com"}, "filter": {"design"}})

	if f.BuyerEmail != "a@x.com" {
		t.Errorf("expected buyer email filter, got %+v", f)
	}
	if f.Category != "" || f.TitleMatch {
		t.Errorf("lower-precedence filters must not apply: %+v", f)
	}
}

func TestOwnerJobFilter_Precedence(t *testing.T) {
	cases := []struct {
		name   string
		values url.Values
		want   ports.JobFilter
	}{
		{"category over search", url.Values{"filter": {"design"}, "search": {"logo"}}, ports.JobFilter{Category: "design"}},
		{"search alone", url.Values{"search": {"logo"}}, ports.JobFilter{Title: "logo", TitleMatch: true}},
		{"nothing matches all", url.Values{}, ports.JobFilter{}},
		{"empty value counts as absent", url.Values{"email": {""}, "filter": {"design"}}, ports.JobFilter{Category: "design"}},
	}
	for _, tc := range cases {
		if got := OwnerJobFilter(tc.values); got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestBidListFilter_Precedence(t *testing.T) {
	f := BidListFilter(url.Values{"email": {"b@x.com"}, "buyer_email": {"a@x.com"}})
	if f.BidderEmail != "b@x.com" || f.BuyerEmail != "" {
		t.Errorf("bidder email must win: %+v", f)
	}

	f = BidListFilter(url.Values{"buyer_email": {"a@x.com"}})
	if f.BuyerEmail != "a@x.com" || f.BidderEmail != "" {
		t.Errorf("expected buyer email filter: %+v", f)
	}

	if f := BidListFilter(url.Values{}); f != (ports.BidFilter{}) {
		t.Errorf("expected match-all filter, got %+v", f)
	}
}

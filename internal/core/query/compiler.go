// Package query compiles raw client query parameters into the filter, sort
// and pagination structures the repositories consume. Compilation is pure:
// the same parameter map always yields the same result, and missing
// parameters never produce an error, only a match-all default.
//
// A parameter counts as present only when its value is non-empty; `?email=`
// behaves exactly like an absent parameter.
package query

import (
	"net/url"
	"strconv"

	"github.com/jobhive/market-system/internal/core/ports"
)

// PublicJobSearch compiles the anonymous listing parameters.
//
// The base filter is always a case-insensitive title substring match on
// `search` (absent compiles to the empty pattern, which matches every
// record). A present `filter` category is ANDed on. A present `sort`
// orders by deadline, ascending for "Asc" and descending for anything else.
// The window is skip = page*number, limit = number.
func PublicJobSearch(values url.Values) ports.JobQuery {
	q := ports.JobQuery{
		Filter: ports.JobFilter{
			Title:      values.Get("search"),
			TitleMatch: true,
			Category:   values.Get("filter"),
		},
	}

	if sort := values.Get("sort"); sort != "" {
		q.Sort = ports.SortDeadlineDesc
		if sort == "Asc" {
			q.Sort = ports.SortDeadlineAsc
		}
	}

	page := intParam(values, "page")
	number := intParam(values, "number")
	q.Skip = int64(page) * int64(number)
	q.Limit = int64(number)
	return q
}

// ownerRules is the ordered decision table for the authenticated job
// listing: the first present parameter wins, later ones are ignored.
var ownerRules = []paramRule[ports.JobFilter]{
	{"email", func(v string) ports.JobFilter { return ports.JobFilter{BuyerEmail: v} }},
	{"filter", func(v string) ports.JobFilter { return ports.JobFilter{Category: v} }},
	{"search", func(v string) ports.JobFilter { return ports.JobFilter{Title: v, TitleMatch: true} }},
}

// OwnerJobFilter compiles the authenticated listing parameters: buyer email,
// else category, else title search, else match-all.
func OwnerJobFilter(values url.Values) ports.JobFilter {
	return firstMatch(ownerRules, values)
}

var bidRules = []paramRule[ports.BidFilter]{
	{"email", func(v string) ports.BidFilter { return ports.BidFilter{BidderEmail: v} }},
	{"buyer_email", func(v string) ports.BidFilter { return ports.BidFilter{BuyerEmail: v} }},
}

// BidListFilter compiles the bid listing parameters: bidder email, else
// buyer email, else match-all.
func BidListFilter(values url.Values) ports.BidFilter {
	return firstMatch(bidRules, values)
}

type paramRule[F any] struct {
	param   string
	compile func(value string) F
}

func firstMatch[F any](rules []paramRule[F], values url.Values) F {
	for _, r := range rules {
		if v := values.Get(r.param); v != "" {
			return r.compile(v)
		}
	}
	var all F
	return all
}

// intParam parses an integer parameter. Absent, non-numeric and negative
// values all coerce to 0, so malformed pagination silently degrades to an
// unbounded window instead of failing the request.
func intParam(values url.Values, key string) int {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

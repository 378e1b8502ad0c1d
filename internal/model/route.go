package model

import (
	"fmt"

	"tollbook/internal/common"
)

// MatchMode controls how interchange names are matched against the
// configured route endpoints.
type MatchMode string

// Matching modes.
const (
	// MatchSubstring matches when the record's interchange name contains the
	// configured endpoint. This mirrors the upstream export behavior but can
	// over-match endpoints that are prefixes of other interchanges.
	MatchSubstring MatchMode = "substring"
	// MatchExact matches only when the name equals the endpoint, with or
	// without an IC suffix.
	MatchExact MatchMode = "exact"
)

// RouteConfig is the user-supplied commute route for one report generation.
// Immutable once the pipeline starts.
type RouteConfig struct {
	From      string // origin endpoint, matched against interchange names
	To        string // destination endpoint
	Mode      MatchMode
	Fare      int // one-way fare in yen
	Allowance int // monthly allowance ceiling in yen
}

// Validate checks that the route is usable for report generation.
func (c RouteConfig) Validate() error {
	if c.From == "" || c.To == "" {
		return common.NewUserError("route origin and destination are required", common.ErrMissingRoute)
	}
	if c.Fare < 0 {
		return common.NewUserError(fmt.Sprintf("one-way fare must not be negative, got %d", c.Fare), common.ErrInvalidFare)
	}
	if c.Allowance < 0 {
		return common.NewUserError(fmt.Sprintf("monthly allowance must not be negative, got %d", c.Allowance), common.ErrInvalidFare)
	}
	switch c.Mode {
	case "", MatchSubstring, MatchExact:
	default:
		return common.NewUserError(fmt.Sprintf("unknown match mode %q", c.Mode), common.ErrInvalidConfig)
	}
	return nil
}

// ExpectedTrips estimates how many one-way trips the monthly allowance
// covers. The fare must be positive here; everywhere else a zero fare is
// tolerated.
func (c RouteConfig) ExpectedTrips() (int, error) {
	if c.Fare <= 0 {
		return 0, common.NewUserError("cannot estimate trips without a positive one-way fare", common.ErrInvalidFare)
	}
	return c.Allowance / c.Fare, nil
}

// RouteRelation describes how a trip record relates to the configured route.
type RouteRelation string

// Route relations.
const (
	// Outbound matches the route in the forward direction.
	Outbound RouteRelation = "OUTBOUND"
	// Return matches the route in the reverse direction.
	Return RouteRelation = "RETURN"
	// RouteAnomaly is a leg whose entry and exit interchange coincide, e.g.
	// a re-entry after a temporary gate closure. Flagged distinctly, never
	// merged into Outbound/Return.
	RouteAnomaly RouteRelation = "ANOMALY"
	// Adjacent touches exactly one route endpoint. Counted toward day totals
	// under the partial-match policy.
	Adjacent RouteRelation = "ADJACENT"
	// Unrelated does not involve the route and is excluded from all output.
	Unrelated RouteRelation = "UNRELATED"
)

// Counts reports whether records with this relation contribute to day
// totals and confirmation marks.
func (r RouteRelation) Counts() bool {
	return r != Unrelated
}

// Certified reports whether the relation counts as a certified commute leg
// in the ledger's 認定回数 column.
func (r RouteRelation) Certified() bool {
	return r == Outbound || r == Return
}

// Label returns the Japanese ledger label for the relation.
func (r RouteRelation) Label() string {
	switch r {
	case Outbound:
		return "往路"
	case Return:
		return "復路"
	case RouteAnomaly:
		return "同一IC"
	case Adjacent:
		return "関連"
	default:
		return "対象外"
	}
}

// ClassifiedRecord is a normalized record tagged with its route relation.
// Derived once, never mutated afterwards.
type ClassifiedRecord struct {
	Record   NormalizedTripRecord
	Relation RouteRelation
}

// Package route decides how each trip record relates to the configured
// commute route. This is the single authoritative implementation of the
// matching policy; the ambiguous cases and their resolutions are spelled out
// on Classify.
package route

import (
	"strings"

	"tollbook/internal/model"
)

// Classifier evaluates records against one route configuration.
type Classifier struct {
	route model.RouteConfig
}

// NewClassifier creates a classifier for the given route. The route is
// assumed to be validated.
func NewClassifier(route model.RouteConfig) *Classifier {
	return &Classifier{route: route}
}

// Classify returns the record's relation to the route.
//
// Matching is by name pair, case-sensitive:
//   - origin matches From and destination matches To: Outbound
//   - origin matches To and destination matches From: Return
//   - origin and destination are the identical interchange and the name
//     involves either endpoint: RouteAnomaly. Checked before the directional
//     cases so a same-interchange leg is never reported as a through trip.
//   - exactly one endpoint matches on either side: Adjacent. These still
//     count toward day totals under the partial-match policy.
//   - otherwise: Unrelated.
//
// When both directional conditions hold at once (endpoints that contain each
// other as substrings), Outbound is reported. The aggregation tie-break keeps
// the first mark either way, so only the relation label is affected.
func (c *Classifier) Classify(rec model.NormalizedTripRecord) model.RouteRelation {
	origin, dest := rec.Origin, rec.Destination

	originFrom := c.matches(origin, c.route.From)
	originTo := c.matches(origin, c.route.To)
	destFrom := c.matches(dest, c.route.From)
	destTo := c.matches(dest, c.route.To)

	if origin != "" && origin == dest && (originFrom || originTo) {
		return model.RouteAnomaly
	}
	if originFrom && destTo {
		return model.Outbound
	}
	if originTo && destFrom {
		return model.Return
	}
	if originFrom || originTo || destFrom || destTo {
		return model.Adjacent
	}
	return model.Unrelated
}

// matches reports whether an interchange name matches a route endpoint under
// the configured mode.
func (c *Classifier) matches(name, endpoint string) bool {
	if name == "" || endpoint == "" {
		return false
	}
	if c.route.Mode == model.MatchExact {
		return name == endpoint ||
			name == endpoint+"IC" ||
			name == endpoint+"ＩＣ"
	}
	return strings.Contains(name, endpoint)
}

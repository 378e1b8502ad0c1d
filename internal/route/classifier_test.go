package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tollbook/internal/model"
)

func TestClassify(t *testing.T) {
	route := model.RouteConfig{From: "日田", To: "大分米良"}

	tests := []struct {
		name   string
		origin string
		dest   string
		want   model.RouteRelation
	}{
		{name: "outbound", origin: "日田IC", dest: "大分米良IC", want: model.Outbound},
		{name: "return", origin: "大分米良IC", dest: "日田IC", want: model.Return},
		{name: "unrelated", origin: "福岡IC", dest: "熊本IC", want: model.Unrelated},
		{name: "same interchange on the route", origin: "日田IC", dest: "日田IC", want: model.RouteAnomaly},
		{name: "same interchange off the route", origin: "福岡IC", dest: "福岡IC", want: model.Unrelated},
		{name: "one endpoint only", origin: "日田IC", dest: "福岡IC", want: model.Adjacent},
		{name: "one endpoint as destination", origin: "別府IC", dest: "大分米良IC", want: model.Adjacent},
		{name: "empty names", origin: "", dest: "", want: model.Unrelated},
	}

	c := NewClassifier(route)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(model.NormalizedTripRecord{Origin: tt.origin, Destination: tt.dest})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyMatchIsCaseAndDirectionSensitive(t *testing.T) {
	c := NewClassifier(model.RouteConfig{From: "Hita", To: "Mera"})

	assert.Equal(t, model.Outbound,
		c.Classify(model.NormalizedTripRecord{Origin: "Hita IC", Destination: "Mera IC"}))
	// Lowercase does not match.
	assert.Equal(t, model.Unrelated,
		c.Classify(model.NormalizedTripRecord{Origin: "hita ic", Destination: "mera ic"}))
}

func TestClassifyExactMode(t *testing.T) {
	route := model.RouteConfig{From: "福岡", To: "日田", Mode: model.MatchExact}
	c := NewClassifier(route)

	tests := []struct {
		name   string
		origin string
		dest   string
		want   model.RouteRelation
	}{
		{name: "plain names match", origin: "福岡", dest: "日田", want: model.Outbound},
		{name: "IC suffix matches", origin: "福岡IC", dest: "日田IC", want: model.Outbound},
		{name: "full width suffix matches", origin: "福岡ＩＣ", dest: "日田ＩＣ", want: model.Outbound},
		{name: "longer name no longer over-matches", origin: "福岡空港IC", dest: "日田IC", want: model.Adjacent},
		{name: "both longer names", origin: "福岡空港IC", dest: "日田天瀬IC", want: model.Unrelated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(model.NormalizedTripRecord{Origin: tt.origin, Destination: tt.dest})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySubstringOverMatch(t *testing.T) {
	// The default substring mode deliberately keeps the upstream behavior:
	// 福岡 also matches 福岡空港IC.
	c := NewClassifier(model.RouteConfig{From: "福岡", To: "日田"})
	got := c.Classify(model.NormalizedTripRecord{Origin: "福岡空港IC", Destination: "日田IC"})
	assert.Equal(t, model.Outbound, got)
}

func TestClassifyOverlappingEndpoints(t *testing.T) {
	// When both directional conditions hold at once, Outbound is reported.
	c := NewClassifier(model.RouteConfig{From: "大分", To: "大分米良"})
	got := c.Classify(model.NormalizedTripRecord{Origin: "大分米良IC", Destination: "大分米良IC"})
	assert.Equal(t, model.RouteAnomaly, got, "same-interchange wins over direction")

	got = c.Classify(model.NormalizedTripRecord{Origin: "大分IC", Destination: "大分米良IC"})
	assert.Equal(t, model.Outbound, got)
}

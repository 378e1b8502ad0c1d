package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tollbook/internal/model"
	"tollbook/internal/pipeline"
)

func TestFormatYen(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2680, "2,680"},
		{112560, "112,560"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatYen(tt.in))
	}
}

func TestRenderSummary(t *testing.T) {
	route := model.RouteConfig{From: "大分米良", To: "日田", Fare: 1340}
	result := &pipeline.Result{
		Year:        2025,
		Month:       5,
		MonthLength: 31,
		Buckets: map[int]model.DayBucket{
			1: {Outbound: model.DaySlot{Mark: model.MarkConfirmed, Amount: 2680}},
			2: {},
		},
		Relations: map[model.RouteRelation]int{
			model.Outbound:  2,
			model.Unrelated: 1,
		},
	}

	out := RenderSummary(result, route)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "2025年5月")
	assert.Contains(t, out, "2,680")
	assert.Contains(t, out, "利用日数")
}

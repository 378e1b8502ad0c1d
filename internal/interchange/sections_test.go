package interchange

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionsSorted(t *testing.T) {
	names := Sections()
	assert.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))
}

func TestFilter(t *testing.T) {
	assert.Equal(t, Sections(), Filter(""))

	oita := Filter("大分")
	assert.Contains(t, oita, "大分米良")
	assert.Contains(t, oita, "大分光吉")
	assert.NotContains(t, oita, "日田")

	assert.Empty(t, Filter("東京"))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("日田"))
	assert.True(t, Known("大分米良"))
	assert.False(t, Known("日田IC"))
	assert.False(t, Known(""))
}

// Package interchange carries the static list of highway interchanges
// offered as route endpoints. The list is local data; there is no lookup
// service behind it.
package interchange

import (
	"sort"
	"strings"
)

// sections covers the Higashi-Kyushu / Oita corridor plus the surrounding
// Kyushu-Yamaguchi interchanges the usage histories reference.
var sections = []string{
	"玖珠", "湯布院", "別府", "大分米良", "大分光吉", "大分宮河内",
	"大分松岡", "大分", "津久見", "津久見南", "佐伯", "佐伯堅田",
	"北浦", "蒲江", "日田", "竹田", "朝地", "宇佐", "院内", "安心院",
	"天瀬高塚", "杷木", "筑紫野", "太宰府", "春日", "福岡", "古賀",
	"宗像", "若宮", "飯塚", "八幡", "小倉", "門司", "北九州", "中津",
	"熊本", "鹿児島", "宮崎", "佐賀", "長崎", "下関", "美祢", "山口",
	"防府", "徳山", "岩国",
}

// Sections returns the interchange names, sorted.
func Sections() []string {
	out := make([]string, len(sections))
	copy(out, sections)
	sort.Strings(out)
	return out
}

// Filter returns the sorted interchange names containing the substring.
// An empty substring returns everything.
func Filter(substr string) []string {
	if substr == "" {
		return Sections()
	}
	var out []string
	for _, s := range Sections() {
		if strings.Contains(s, substr) {
			out = append(out, s)
		}
	}
	return out
}

// Known reports whether an endpoint appears in the list. Used to warn about
// likely typos in route configuration, not to reject them.
func Known(endpoint string) bool {
	for _, s := range sections {
		if s == endpoint {
			return true
		}
	}
	return false
}

package cli

import (
	"fmt"
	"strings"

	"tollbook/internal/model"
	"tollbook/internal/pipeline"
)

// RenderSummary renders a boxed run summary for the terminal.
func RenderSummary(result *pipeline.Result, route model.RouteConfig) string {
	var b strings.Builder

	b.WriteString(BoldStyle.Render(fmt.Sprintf("%d年%d月 高速道路利用実績", result.Year, result.Month)))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%s ⇔ %s", route.From, route.To)))
	b.WriteString("\n\n")

	totalAmount := 0
	usedDays := 0
	for _, bucket := range result.Buckets {
		totalAmount += bucket.Outbound.Amount + bucket.Return.Amount
		if !bucket.Empty() {
			usedDays++
		}
	}

	fmt.Fprintf(&b, "利用日数:   %d日\n", usedDays)
	fmt.Fprintf(&b, "利用料金:   ¥%s\n", FormatYen(totalAmount))
	fmt.Fprintf(&b, "往路:       %d回\n", result.Relations[model.Outbound])
	fmt.Fprintf(&b, "復路:       %d回\n", result.Relations[model.Return])
	if n := result.Relations[model.RouteAnomaly]; n > 0 {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("同一IC異常: %d回", n)))
		b.WriteString("\n")
	}
	if n := result.Relations[model.Adjacent]; n > 0 {
		fmt.Fprintf(&b, "関連区間:   %d回\n", n)
	}
	fmt.Fprintf(&b, "対象外:     %d回\n", result.Relations[model.Unrelated])
	if result.Dropped > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("解析不能のため除外: %d件", result.Dropped)))
		b.WriteString("\n")
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// FormatYen renders an amount with digit grouping.
func FormatYen(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}

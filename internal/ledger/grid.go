package ledger

import (
	"sort"

	"tollbook/internal/model"
)

// firstDataRow is the sheet row of day 1 (and day 16) in the target layout.
const firstDataRow = 13

// Position returns the fixed layout position for a day of the month: days
// 1-15 run down the first-half column group, days 16-30 mirror them in the
// second-half group, and day 31 lands on the row right after the second
// half's last regular row. The irregular split is a property of the official
// ledger sheet and is reproduced exactly, not generalized.
func Position(day int) (model.ColumnGroup, int) {
	switch {
	case day <= 15:
		return model.FirstHalf, day + firstDataRow - 1
	case day <= 30:
		return model.SecondHalf, day - 15 + firstDataRow - 1
	default:
		return model.SecondHalf, firstDataRow + 15
	}
}

// MapToGrid converts the day buckets into grid cells for the renderer. Cells
// are emitted only for non-empty slots, ordered by day with the outbound
// slot before the return slot, so the output is deterministic for identical
// input.
func MapToGrid(buckets map[int]model.DayBucket, monthLength int) []model.GridCell {
	days := make([]int, 0, len(buckets))
	for day := range buckets {
		if day >= 1 && day <= monthLength {
			days = append(days, day)
		}
	}
	sort.Ints(days)

	var cells []model.GridCell
	for _, day := range days {
		bucket := buckets[day]
		group, row := Position(day)

		if !bucket.Outbound.Empty() {
			cells = append(cells,
				model.GridCell{Group: group, Row: row, Field: model.FieldOutboundMark, Value: bucket.Outbound.Mark},
				model.GridCell{Group: group, Row: row, Field: model.FieldOutboundAmount, Value: bucket.Outbound.Amount},
			)
		}
		if !bucket.Return.Empty() {
			cells = append(cells,
				model.GridCell{Group: group, Row: row, Field: model.FieldReturnMark, Value: bucket.Return.Mark},
				model.GridCell{Group: group, Row: row, Field: model.FieldReturnAmount, Value: bucket.Return.Amount},
			)
		}
	}
	return cells
}

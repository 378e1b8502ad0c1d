// Package ledger folds classified trip records into per-day buckets and maps
// them onto the fixed ledger grid layout.
package ledger

import "tollbook/internal/model"

// Aggregate builds the day buckets for one target month. Every day from 1 to
// the month's length gets a bucket, empty or not, so downstream rendering
// always sees the complete range.
//
// Each record whose date falls in the target month and whose relation counts
// is folded into its day's slot: the fare is added to the slot total, and the
// slot's mark is set by the first qualifying record only. Later records never
// change an already-set mark, so amount totals are independent of input
// order while the mark keeps its first-wins semantics.
func Aggregate(records []model.ClassifiedRecord, year, month int) map[int]model.DayBucket {
	length := model.DaysInMonth(year, month)
	buckets := make(map[int]model.DayBucket, length)
	for day := 1; day <= length; day++ {
		buckets[day] = model.DayBucket{}
	}

	for _, rec := range records {
		r := rec.Record
		if r.Year != year || r.Month != month || !rec.Relation.Counts() {
			continue
		}

		bucket := buckets[r.Day]
		slot := bucket.Slot(r.Bucket)
		slot.Amount += r.Fare
		if slot.Mark == model.MarkNone {
			slot.Mark = markFor(rec.Relation)
		}
		buckets[r.Day] = bucket
	}

	return buckets
}

// markFor maps a counting relation to its confirmation mark.
func markFor(rel model.RouteRelation) model.Mark {
	if rel == model.RouteAnomaly {
		return model.MarkAnomaly
	}
	return model.MarkConfirmed
}

// Package pipeline wires the normalizer, classifier, aggregator and grid
// mapper into one report-generation pass. This is the single authoritative
// implementation of the matching flow; every policy decision lives in the
// component packages, and the pipeline only sequences them.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"tollbook/internal/ledger"
	"tollbook/internal/model"
	"tollbook/internal/normalize"
	"tollbook/internal/route"
)

// Hooks receives day-level events during a run. Implementations must not be
// required for correctness; the pipeline works identically with NopHooks.
type Hooks interface {
	// RecordDropped is called for each record the normalizer rejects.
	RecordDropped(raw model.RawTripRecord, err error)
	// DayAggregated is called once per non-empty day after aggregation.
	DayAggregated(day int, bucket model.DayBucket)
	// EmptyMonth is called when no record matched the target month.
	EmptyMonth(year, month int)
}

// NopHooks ignores all events.
type NopHooks struct{}

// RecordDropped implements Hooks.
func (NopHooks) RecordDropped(model.RawTripRecord, error) {}

// DayAggregated implements Hooks.
func (NopHooks) DayAggregated(int, model.DayBucket) {}

// EmptyMonth implements Hooks.
func (NopHooks) EmptyMonth(int, int) {}

// Result is everything one run produces. Recomputed from scratch per run;
// identical input always yields identical output.
type Result struct {
	Year        int
	Month       int
	MonthLength int
	Buckets     map[int]model.DayBucket
	Cells       []model.GridCell
	Details     []model.Detail
	Parsed      int
	Dropped     int
	Relations   map[model.RouteRelation]int
}

// Empty reports whether no record matched the target month.
func (r *Result) Empty() bool {
	for _, bucket := range r.Buckets {
		if !bucket.Empty() {
			return false
		}
	}
	return true
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithHooks sets the observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(p *Pipeline) { p.hooks = hooks }
}

// Pipeline runs the CSV-to-grid matching flow for one route.
type Pipeline struct {
	routeCfg   model.RouteConfig
	classifier *route.Classifier
	logger     *slog.Logger
	hooks      Hooks
}

// New creates a pipeline for the given route. Configuration errors are fatal
// here, before any record is touched.
func New(routeCfg model.RouteConfig, opts ...Option) (*Pipeline, error) {
	if err := routeCfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		routeCfg:   routeCfg,
		classifier: route.NewClassifier(routeCfg),
		logger:     slog.Default(),
		hooks:      NopHooks{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run processes one batch of raw records for the target month. Pass zero
// year/month to use the latest period found in the data. Per-record parse
// failures are dropped and counted, never fatal; an empty month is a
// warning, not an error, and still yields the full day range.
func (p *Pipeline) Run(ctx context.Context, raws []model.RawTripRecord, year, month int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if year == 0 || month == 0 {
		detected, detectedMonth, err := normalize.DetectPeriod(raws)
		if err != nil {
			return nil, err
		}
		year, month = detected, detectedMonth
		p.logger.Info("detected report period", "year", year, "month", month)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month out of range: %d", month)
	}

	classified := make([]model.ClassifiedRecord, 0, len(raws))
	details := make([]model.Detail, 0, len(raws))
	relations := make(map[model.RouteRelation]int)
	dropped := 0

	for _, raw := range raws {
		rec, err := normalize.Normalize(raw)
		if err != nil {
			dropped++
			p.hooks.RecordDropped(raw, err)
			p.logger.Debug("dropped record", "date", raw.DepartureDate, "error", err)
			continue
		}

		rel := p.classifier.Classify(rec)
		relations[rel]++
		classified = append(classified, model.ClassifiedRecord{Record: rec, Relation: rel})

		if rec.Year == year && rec.Month == month {
			details = append(details, model.Detail{
				Date:          fmt.Sprintf("%04d/%02d/%02d", rec.Year, rec.Month, rec.Day),
				Origin:        rec.Origin,
				Destination:   rec.Destination,
				DepartureTime: raw.DepartureTime,
				Fare:          rec.Fare,
				Relation:      rel,
				Remark:        raw.Remark,
			})
		}
	}

	buckets := ledger.Aggregate(classified, year, month)
	monthLength := model.DaysInMonth(year, month)

	result := &Result{
		Year:        year,
		Month:       month,
		MonthLength: monthLength,
		Buckets:     buckets,
		Cells:       ledger.MapToGrid(buckets, monthLength),
		Details:     details,
		Parsed:      len(classified),
		Dropped:     dropped,
		Relations:   relations,
	}

	for day := 1; day <= monthLength; day++ {
		if bucket := buckets[day]; !bucket.Empty() {
			p.hooks.DayAggregated(day, bucket)
		}
	}
	if result.Empty() {
		p.hooks.EmptyMonth(year, month)
		p.logger.Warn("no record matched the target month", "year", year, "month", month)
	}

	p.logger.Info("pipeline complete",
		"year", year,
		"month", month,
		"parsed", result.Parsed,
		"dropped", result.Dropped,
		"grid_cells", len(result.Cells))

	return result, nil
}

// Report assembles the renderer input from a result and header metadata.
func (p *Pipeline) Report(result *Result, identity model.Identity) *model.Report {
	return &model.Report{
		Year:        result.Year,
		Month:       result.Month,
		MonthLength: result.MonthLength,
		Route:       p.routeCfg,
		Identity:    identity,
		Buckets:     result.Buckets,
		Cells:       result.Cells,
		Details:     result.Details,
	}
}

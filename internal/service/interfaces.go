// Package service defines the interfaces between the pipeline and its
// collaborators.
package service

import (
	"context"
	"io"

	"tollbook/internal/model"
)

// ReportWriter renders one monthly ledger. Implementations decide the output
// format; the pipeline only hands over the assembled report.
type ReportWriter interface {
	Write(ctx context.Context, report *model.Report) error
}

// RecordSource parses one uploaded usage-history file into raw trip records.
type RecordSource interface {
	ParseFile(ctx context.Context, reader io.Reader) ([]model.RawTripRecord, error)
}

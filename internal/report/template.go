package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"tollbook/internal/model"
)

// Fixed cell addresses of the official ledger template. The template's
// layout is an external contract; none of these are configurable.
const (
	cellOrganization = "C3"
	cellPosition     = "K3"
	cellName         = "N3"
	cellEraYear      = "B5" // 令和 year
	cellMonth        = "D5"
	cellRouteFrom    = "M5"
	cellRouteTo      = "P5"
	cellFare         = "M6"
	cellPeriodStart  = "E56"
	cellPeriodEnd    = "E57"
)

// reiwaOffset converts a Gregorian year to the 令和 era year the template
// expects (2019 = 令和元年).
const reiwaOffset = 2018

// gridColumns maps a grid cell's (group, field) to the template column.
var gridColumns = map[model.ColumnGroup]map[model.GridField]string{
	model.FirstHalf: {
		model.FieldOutboundMark:   "D",
		model.FieldOutboundAmount: "E",
		model.FieldReturnMark:     "G",
		model.FieldReturnAmount:   "H",
	},
	model.SecondHalf: {
		model.FieldOutboundMark:   "L",
		model.FieldOutboundAmount: "M",
		model.FieldReturnMark:     "O",
		model.FieldReturnAmount:   "P",
	},
}

// fillTemplate copies the official template and writes the header cells and
// every grid cell verbatim.
func (w *Writer) fillTemplate(report *model.Report) error {
	f, err := excelize.OpenFile(w.config.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			w.logger.Warn("failed to close template", "error", closeErr)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return fmt.Errorf("template has no sheets")
	}

	setCells(f, sheet, map[string]any{
		cellOrganization: report.Identity.Organization,
		cellPosition:     report.Identity.Position,
		cellName:         report.Identity.Name,
		cellEraYear:      report.Year - reiwaOffset,
		cellMonth:        report.Month,
		cellRouteFrom:    report.Route.From,
		cellRouteTo:      report.Route.To,
		cellFare:         report.Route.Fare,
	})

	start := time.Date(report.Year, time.Month(report.Month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(report.Year, time.Month(report.Month), report.MonthLength, 0, 0, 0, 0, time.UTC)
	_ = f.SetCellValue(sheet, cellPeriodStart, start)
	_ = f.SetCellValue(sheet, cellPeriodEnd, end)

	for _, gc := range report.Cells {
		col, ok := gridColumns[gc.Group][gc.Field]
		if !ok {
			return fmt.Errorf("no template column for grid cell %s/%s", gc.Group, gc.Field)
		}
		value := gc.Value
		if mark, isMark := value.(model.Mark); isMark {
			value = mark.Glyph()
		}
		_ = f.SetCellValue(sheet, cell(col, gc.Row), value)
	}

	if err := f.SaveAs(w.config.OutputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

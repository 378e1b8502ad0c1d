// Package report renders the monthly ledger workbook. Two modes exist, both
// producing the fixed Japanese expense-report format: a workbook built from
// scratch with the full per-transaction table, or an official template
// filled cell by cell.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"tollbook/internal/model"
	"tollbook/internal/service"
)

const ledgerFont = "ＭＳ ゴシック"

// Writer implements service.ReportWriter on top of a local xlsx file.
type Writer struct {
	config Config
	logger *slog.Logger
}

var _ service.ReportWriter = (*Writer)(nil)

// NewWriter creates a ledger writer.
func NewWriter(config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{config: config, logger: logger}, nil
}

// Write renders the report to the configured output path.
func (w *Writer) Write(ctx context.Context, report *model.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.logger.Info("writing ledger",
		"year", report.Year,
		"month", report.Month,
		"output", w.config.OutputPath,
		"template", w.config.TemplatePath != "")

	if w.config.TemplatePath != "" {
		return w.fillTemplate(report)
	}
	return w.buildWorkbook(report)
}

// buildWorkbook creates the ledger from scratch: header block, one row per
// transaction, totals and approval rows.
func (w *Writer) buildWorkbook(report *model.Report) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.logger.Warn("failed to close workbook", "error", err)
		}
	}()

	sheet := fmt.Sprintf("%d年%d月利用実績簿", report.Year, report.Month)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := newLedgerStyles(f)
	if err != nil {
		return err
	}

	if err := w.writeHeaderBlock(f, sheet, styles, report); err != nil {
		return err
	}

	row, totalFare, certified, err := w.writeDetailRows(f, sheet, styles, report)
	if err != nil {
		return err
	}

	// Totals row.
	setCells(f, sheet, map[string]any{
		cell("D", row): "合計",
		cell("E", row): totalFare,
		cell("H", row): certified,
	})
	_ = f.SetCellStyle(sheet, cell("A", row), cell("H", row), styles.totalRow)
	_ = f.SetCellStyle(sheet, cell("E", row), cell("E", row), styles.totalYen)

	// Approval row.
	row += 2
	setCells(f, sheet, map[string]any{
		cell("A", row): "承認者",
		cell("B", row): "印",
		cell("E", row): "申請者",
		cell("F", row): "印",
	})
	_ = f.MergeCell(sheet, cell("B", row), cell("C", row))
	_ = f.MergeCell(sheet, cell("F", row), cell("G", row))
	_ = f.SetCellStyle(sheet, cell("A", row), cell("A", row), styles.header)
	_ = f.SetCellStyle(sheet, cell("E", row), cell("E", row), styles.header)
	_ = f.SetCellStyle(sheet, cell("B", row), cell("C", row), styles.stamp)
	_ = f.SetCellStyle(sheet, cell("F", row), cell("G", row), styles.stamp)

	widths := []float64{12, 18, 18, 10, 12, 10, 25, 8}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, width)
	}

	if err := f.SaveAs(w.config.OutputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeHeaderBlock writes the title, period and route/fare header area.
func (w *Writer) writeHeaderBlock(f *excelize.File, sheet string, styles *ledgerStyles, report *model.Report) error {
	_ = f.MergeCell(sheet, "A1", "H1")
	_ = f.SetCellValue(sheet, "A1", "高速道路等利用実績簿")
	_ = f.SetCellStyle(sheet, "A1", "A1", styles.title)
	_ = f.SetRowHeight(sheet, 1, 25)

	_ = f.MergeCell(sheet, "A2", "H2")
	_ = f.SetCellValue(sheet, "A2", fmt.Sprintf("（%d年%d月分）", report.Year, report.Month))
	_ = f.SetCellStyle(sheet, "A2", "A2", styles.subtitle)
	_ = f.SetRowHeight(sheet, 2, 20)

	_ = f.SetRowHeight(sheet, 3, 10)

	setCells(f, sheet, map[string]any{
		"A4": "利用区間",
		"B4": fmt.Sprintf("%s ⇔ %s", report.Route.From, report.Route.To),
		"E4": "片道料金",
		"F4": report.Route.Fare,
		"A5": "月間特別料金等加算額（認定額）",
		"B5": report.Route.Allowance,
	})
	_ = f.MergeCell(sheet, "B4", "D4")
	_ = f.MergeCell(sheet, "F4", "G4")
	_ = f.SetCellStyle(sheet, "A4", "A4", styles.header)
	_ = f.SetCellStyle(sheet, "E4", "E4", styles.header)
	_ = f.SetCellStyle(sheet, "A5", "A5", styles.header)
	_ = f.SetCellStyle(sheet, "F4", "G4", styles.yen)
	_ = f.SetCellStyle(sheet, "B5", "D5", styles.yen)
	_ = f.SetRowHeight(sheet, 6, 10)

	headers := []string{"利用日", "出発IC", "到着IC", "出発時刻", "通行料金", "往復区分", "備考", "認定回数"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetCellValue(sheet, cell(col, 7), h)
	}
	_ = f.SetCellStyle(sheet, "A7", "H7", styles.columnHeader)
	_ = f.SetRowHeight(sheet, 7, 18)
	return nil
}

// writeDetailRows writes one row per transaction starting at row 8 and
// returns the next free row plus the totals.
func (w *Writer) writeDetailRows(f *excelize.File, sheet string, styles *ledgerStyles, report *model.Report) (nextRow, totalFare, certified int, err error) {
	row := 8
	for _, d := range report.Details {
		setCells(f, sheet, map[string]any{
			cell("A", row): d.Date,
			cell("B", row): d.Origin,
			cell("C", row): d.Destination,
			cell("D", row): d.DepartureTime,
			cell("E", row): d.Fare,
			cell("F", row): d.Relation.Label(),
			cell("G", row): d.Remark,
			cell("H", row): certifiedCount(d.Relation),
		})
		_ = f.SetCellStyle(sheet, cell("A", row), cell("H", row), styles.detail)
		_ = f.SetCellStyle(sheet, cell("E", row), cell("E", row), styles.detailYen)

		totalFare += d.Fare
		certified += certifiedCount(d.Relation)
		row++
	}
	return row, totalFare, certified, nil
}

func certifiedCount(rel model.RouteRelation) int {
	if rel.Certified() {
		return 1
	}
	return 0
}

func setCells(f *excelize.File, sheet string, values map[string]any) {
	for ref, v := range values {
		_ = f.SetCellValue(sheet, ref, v)
	}
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// ledgerStyles holds the style IDs the scratch workbook uses.
type ledgerStyles struct {
	title        int
	subtitle     int
	header       int
	columnHeader int
	detail       int
	detailYen    int
	yen          int
	totalRow     int
	totalYen     int
	stamp        int
}

func newLedgerStyles(f *excelize.File) (*ledgerStyles, error) {
	yenFormat := "¥#,##0"
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	right := &excelize.Alignment{Horizontal: "right"}

	thin := borders(1)
	thick := borders(5)

	var s ledgerStyles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: ledgerFont, Size: 16, Bold: true},
		Alignment: center,
	}); err != nil {
		return nil, fmt.Errorf("failed to build styles: %w", err)
	}
	s.subtitle, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: ledgerFont, Size: 12, Bold: true},
		Alignment: center,
	})
	s.header, _ = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: ledgerFont, Size: 11, Bold: true},
	})
	s.columnHeader, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: ledgerFont, Size: 11, Bold: true},
		Alignment: center,
		Border:    thick,
	})
	s.detail, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: ledgerFont, Size: 10},
		Alignment: center,
		Border:    thin,
	})
	s.detailYen, _ = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Family: ledgerFont, Size: 10},
		Border:       thin,
		CustomNumFmt: &yenFormat,
	})
	s.yen, _ = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Family: ledgerFont, Size: 10},
		Alignment:    right,
		CustomNumFmt: &yenFormat,
	})
	s.totalRow, _ = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: ledgerFont, Size: 11, Bold: true},
		Border: thick,
	})
	s.totalYen, _ = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Family: ledgerFont, Size: 11, Bold: true},
		Border:       thick,
		CustomNumFmt: &yenFormat,
	})
	s.stamp, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: ledgerFont, Size: 10},
		Alignment: center,
		Border:    thin,
	})
	return &s, nil
}

func borders(style int) []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	out := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		out = append(out, excelize.Border{Type: side, Style: style, Color: "000000"})
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"tollbook/internal/etccsv"
	"tollbook/internal/model"
)

// expandFiles resolves glob patterns and plain paths into the list of CSV
// files to read.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files found to read")
	}
	return files, nil
}

// parseFiles reads every CSV file, merging the records. A file that fails to
// parse is reported and skipped, the remaining files still count.
func parseFiles(ctx context.Context, files []string) ([]model.RawTripRecord, error) {
	parser := etccsv.NewParser()

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Reading usage histories..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	var records []model.RawTripRecord
	failures := 0
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			slog.Error("Failed to open file", "file", path, "error", err)
			failures++
			_ = bar.Add(1)
			continue
		}

		parsed, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse file", "file", filepath.Base(path), "error", err)
			failures++
			_ = bar.Add(1)
			continue
		}

		records = append(records, parsed...)
		_ = bar.Add(1)
	}

	if failures == len(files) {
		return nil, fmt.Errorf("none of the %d files could be parsed", len(files))
	}
	return records, nil
}

// parseMonthFlag parses a "YYYY-MM" (or "YYYY/MM") value into year and
// month. An empty value means auto-detect.
func parseMonthFlag(s string) (year, month int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	normalized := strings.ReplaceAll(s, "/", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil || year < 1000 {
		return 0, 0, fmt.Errorf("invalid month %q: bad year", s)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q: bad month", s)
	}
	return year, month, nil
}

// defaultOutputPath names the output file the way the official ledger is
// filed: year, month, then the applicant's name when known.
func defaultOutputPath(year, month int, name string) string {
	if name != "" {
		return fmt.Sprintf("%d_%02d_高速道路利用実績簿（%s）.xlsx", year, month, name)
	}
	return fmt.Sprintf("%d_%02d_高速道路利用実績簿.xlsx", year, month)
}

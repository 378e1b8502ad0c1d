package report

import (
	"fmt"
	"os"
)

// Config controls where and how the ledger workbook is written.
type Config struct {
	// OutputPath is the destination .xlsx file.
	OutputPath string
	// TemplatePath, when set, selects template mode: the official ledger
	// template is copied and filled in place of building a workbook from
	// scratch.
	TemplatePath string
}

// Validate checks the configuration before any rendering starts.
func (c Config) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.TemplatePath != "" {
		if _, err := os.Stat(c.TemplatePath); err != nil {
			return fmt.Errorf("template not readable: %w", err)
		}
	}
	return nil
}

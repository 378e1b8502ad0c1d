package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthFlag(t *testing.T) {
	tests := []struct {
		in        string
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{in: "", wantYear: 0, wantMonth: 0},
		{in: "2025-05", wantYear: 2025, wantMonth: 5},
		{in: "2025/05", wantYear: 2025, wantMonth: 5},
		{in: "2024-12", wantYear: 2024, wantMonth: 12},
		{in: "2025-13", wantErr: true},
		{in: "2025-0", wantErr: true},
		{in: "25-05", wantErr: true},
		{in: "may 2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			year, month, err := parseMonthFlag(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "2025_05_高速道路利用実績簿（山田太郎）.xlsx", defaultOutputPath(2025, 5, "山田太郎"))
	assert.Equal(t, "2025_05_高速道路利用実績簿.xlsx", defaultOutputPath(2025, 5, ""))
}

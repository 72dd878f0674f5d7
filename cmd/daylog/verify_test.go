package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = `[ERROR] 2024/05/01 10:00:00 main.main:11 -| boom now
[INFO ] 2024/05/01 10:00:01 main.worker:20 -| started
    2: runtime.goexit asm_amd64.s:1700 0x47b3e1
    1: main.main main.go:9 0x4a3f21
    0: main.worker main.go:20 0x4a3e80
[     ] 2024/05/01 10:00:02 main.main:12 -| 
`

func TestScanLog_WellFormed(t *testing.T) {
	report, err := scanLog(strings.NewReader(wellFormed))

	require.NoError(t, err)
	assert.Empty(t, report.Malformed)
	assert.Equal(t, 1, report.Entries["ERROR"])
	assert.Equal(t, 1, report.Entries["INFO "])
	assert.Equal(t, 1, report.Entries["     "])
	assert.Equal(t, 3, report.Frames)
}

func TestScanLog_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []int
	}{
		{
			name:  "spliced line",
			input: "[INFO ] 2024/05/01 10:00:00 main.main:1 -| half[ERROR] 2024/05/01\n10:00:00 main.main:2 -| rest\n",
			lines: []int{2},
		},
		{
			name:  "frame without entry",
			input: "    0: main.main main.go:1 0x1\n",
			lines: []int{1},
		},
		{
			name:  "frames out of order",
			input: "[WARN ] 2024/05/01 10:00:00 f:1 -| x\n    1: a\n    1: b\n    0: c\n",
			lines: []int{3},
		},
		{
			name:  "block not ending at zero",
			input: "[WARN ] 2024/05/01 10:00:00 f:1 -| x\n    2: a\n    1: b\n[WARN ] 2024/05/01 10:00:00 f:2 -| y\n",
			lines: []int{2},
		},
		{
			name:  "bad label",
			input: "[FATAL] 2024/05/01 10:00:00 f:1 -| x\n",
			lines: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := scanLog(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.lines, report.Malformed)
		})
	}
}

func TestRenderReport(t *testing.T) {
	report, err := scanLog(strings.NewReader(wellFormed))
	require.NoError(t, err)

	var out bytes.Buffer
	renderReport(&out, report)

	assert.Contains(t, out.String(), "[ERROR]")
	assert.Contains(t, out.String(), "Frame lines")
	assert.Contains(t, out.String(), "Malformed")
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	entryLine = regexp.MustCompile(`^\[(TRACE|DEBUG|INFO |WARN |ERROR|     )\] \d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} .+:-?\d+ -\| `)
	frameLine = regexp.MustCompile(`^    (\d+): .+$`)
)

// labelOrder is the display order of the verify table.
var labelOrder = []string{"TRACE", "DEBUG", "INFO ", "WARN ", "ERROR", "     "}

// verifyReport counts what was found in a log file.
type verifyReport struct {
	Entries   map[string]int // entries per level label
	Frames    int            // frame lines
	Malformed []int          // 1-based line numbers that match no format
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that every line of a log file is well formed",
		Long: `verify reads a daylog file and checks every line against the entry format
and every stack frame line against the frame format, including that frames
count down to zero. It prints per-level counts and fails if any line is malformed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			report, err := scanLog(f)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			renderReport(cmd.OutOrStdout(), report)
			if len(report.Malformed) > 0 {
				return fmt.Errorf("%d malformed lines, first at line %d", len(report.Malformed), report.Malformed[0])
			}
			return nil
		},
	}
}

// scanLog classifies each line. A frame line is only valid directly after an entry or
// another frame, numbered one below its predecessor; the last frame of a block is 0.
func scanLog(r io.Reader) (*verifyReport, error) {
	report := &verifyReport{Entries: make(map[string]int)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	inEntry := false
	next := -1 // expected number of the next frame, -1 when no frame block is open
	blockStart := 0
	closeBlock := func() {
		if next >= 0 {
			report.Malformed = append(report.Malformed, blockStart)
		}
		next = -1
	}

	for sc.Scan() {
		lineNo++
		line := sc.Text()

		if m := entryLine.FindStringSubmatch(line); m != nil {
			closeBlock()
			report.Entries[m[1]]++
			inEntry = true
			continue
		}

		if m := frameLine.FindStringSubmatch(line); m != nil && inEntry {
			n, _ := strconv.Atoi(m[1])
			if next == -1 {
				blockStart = lineNo
			} else if n != next {
				report.Malformed = append(report.Malformed, lineNo)
			}
			report.Frames++
			next = n - 1
			if n == 0 {
				inEntry = false
				next = -1
			}
			continue
		}

		closeBlock()
		inEntry = false
		report.Malformed = append(report.Malformed, lineNo)
	}
	closeBlock()
	return report, sc.Err()
}

func renderReport(out io.Writer, report *verifyReport) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Level", "Entries"})
	total := 0
	for _, label := range labelOrder {
		count := report.Entries[label]
		total += count
		t.AppendRow(table.Row{"[" + label + "]", count})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"Frame lines", report.Frames})
	t.AppendRow(table.Row{"Malformed", len(report.Malformed)})
	t.AppendFooter(table.Row{"Total entries", total})
	t.Render()
}

package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/inhies/go-bytesize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shivanshs9/wordbench/internal/bench"
	"github.com/shivanshs9/wordbench/internal/bucketset"
	"github.com/shivanshs9/wordbench/internal/report"
)

func fixedResult() bench.Result {
	return bench.Result{
		Words:    1200,
		Distinct: 1000,
		Queries:  1000,
		Buckets:  32768,
		Chains:   bucketset.ChainStats{UsedBuckets: 985, LongestChain: 3, MeanChain: 1.015},
		Trie: bench.Measurement{
			Build:       40 * time.Millisecond,
			Found:       1000,
			LookupTotal: 250 * time.Microsecond,
			Memory:      3 * bytesize.MB,
		},
		Table: bench.Measurement{
			Build:       10 * time.Millisecond,
			Found:       1000,
			LookupTotal: 125 * time.Microsecond,
			Memory:      1 * bytesize.MB,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, fixedResult()); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Metric,Trie,Hash Table",
		"Build Time (ms),40,10",
		"Avg Lookup Time (microseconds),0.250,0.125",
		"Memory Usage (MB),3,1",
		"Words Loaded,1200,1200",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteCSV() mismatch (-want +got):\n%s", diff)
	}
}

func TestWinners(t *testing.T) {
	t.Parallel()
	r := fixedResult()

	tests := []struct {
		name string
		got  report.Comparison
		want report.Comparison
	}{
		{"build", report.BuildWinner(r), report.Comparison{Winner: "Hash Table", Ratio: 4, Savings: 75}},
		{"lookup", report.LookupWinner(r), report.Comparison{Winner: "Hash Table", Ratio: 2, Savings: 50}},
		{
			"memory",
			report.MemoryWinner(r),
			report.Comparison{Winner: "Hash Table", Ratio: 3, Savings: 100 * 2.0 / 3.0},
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%s winner mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	r.Trie.LookupTotal = 0
	if got := report.LookupWinner(r); got.Winner != "Trie" || got.Ratio != 0 {
		t.Errorf("LookupWinner() with zero trie time = %+v", got)
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := report.WriteText(&buf, fixedResult()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Total words loaded: 1200",
		"Trie build time:       40 ms",
		"Winner: Hash Table (4.00x faster)",
		"LOOKUP PERFORMANCE (1000 random queries):",
		"Trie average:       0.250 μs per query",
		"Winner: Hash Table (67% less memory)",
		"Longest chain:  3",
		"For autocomplete/prefix search: Trie",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report.PrintTable(&buf, fixedResult(), 0)
	out := buf.String()

	for _, want := range []string{"METRIC", "Words found", "0.250", "0.125", "Hash Table is 2.00x faster"} {
		if !strings.Contains(out, want) {
			t.Errorf("table is missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTable_LeavesColorsAlone(t *testing.T) {
	t.Parallel()

	bold := text.Colors{text.Bold}
	before := bold.Sprint("x")

	var buf bytes.Buffer
	report.PrintTable(&buf, fixedResult(), 0)
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("plain table contains escape codes:\n%q", buf.String())
	}
	if after := bold.Sprint("x"); after != before {
		t.Errorf("color output changed from %q to %q after printing a plain table", before, after)
	}
}

func TestSaveFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "results.csv")
	reportPath := filepath.Join(dir, "report.txt")

	if err := report.SaveFiles(csvPath, reportPath, fixedResult()); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{csvPath, reportPath} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Errorf("%s not written: %v", p, err)
		}
	}

	if err := report.SaveFiles(filepath.Join(dir, "missing", "x.csv"), "", fixedResult()); err == nil {
		t.Error("expected an error writing into a missing directory")
	}
	if err := report.SaveFiles("", "", fixedResult()); err != nil {
		t.Errorf("SaveFiles with no paths: %v", err)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// urfave/cli keeps its help flag in a global, so these tests do not run in
// parallel.

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

const words = "The cat sat on the mat. A careful dog, a card, some care!\n"

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"wordbench"}, args...), strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Bench(t *testing.T) {
	dir := t.TempDir()
	wordFile := writeFile(t, dir, "words.txt", words)
	csvPath := filepath.Join(dir, "out.csv")
	reportPath := filepath.Join(dir, "out.txt")

	code, stdout, stderr := runCLI(t, "",
		"bench", "--queries", "50", "--buckets", "0", "--seed", "4",
		"--csv", csvPath, "--report", reportPath, wordFile)
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "Words found") || !strings.Contains(stdout, "Results exported to") {
		t.Errorf("unexpected output:\n%s", stdout)
	}

	csv, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(csv), "Metric,Trie,Hash Table\n") {
		t.Errorf("unexpected csv:\n%s", csv)
	}
	if !strings.Contains(string(csv), "Words Loaded,13,13") {
		t.Errorf("csv should count 13 words:\n%s", csv)
	}
	if _, err := os.Stat(reportPath); err != nil {
		t.Error(err)
	}
}

func TestRun_BenchConfig(t *testing.T) {
	dir := t.TempDir()
	wordFile := writeFile(t, dir, "words.txt", words)
	cfg := writeFile(t, dir, "wordbench.toml", strings.Join([]string{
		`word_file = "` + filepath.ToSlash(wordFile) + `"`,
		`queries = 10`,
		`csv_path = ""`,
		`report_path = ""`,
	}, "\n"))

	code, stdout, stderr := runCLI(t, "", "--config", cfg, "bench")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if strings.Contains(stdout, "Results exported") {
		t.Errorf("empty csv_path should skip the export:\n%s", stdout)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	badConfig := writeFile(t, dir, "bad.toml", "nonsense = 1")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no word file", []string{"bench", "--csv", "", "--report", ""}, "no word file given"},
		{"missing word file", []string{"bench", filepath.Join(dir, "nope.txt")}, "could not open word list"},
		{"bad config", []string{"--config", badConfig, "bench"}, "unknown keys"},
		{"bad queries", []string{"bench", "--queries", "0", "x"}, "queries must be positive"},
		{"bad profile", []string{"bench", "--profile", "gpu", writeFile(t, dir, "w.txt", words)}, "unsupported profile"},
		{"bad verbosity", []string{"--verbosity", "loud", "bench"}, "invalid verbosity level"},
		{"search args", []string{"search", "only-file"}, "search needs a word file"},
		{"complete args", []string{"complete"}, "complete needs a word file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			if code != 127 {
				t.Errorf("exit code = %d, want 127", code)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr is missing %q:\n%s", tt.want, stderr)
			}
		})
	}
}

func TestRun_Search(t *testing.T) {
	wordFile := writeFile(t, t.TempDir(), "words.txt", words)

	code, stdout, stderr := runCLI(t, "", "search", wordFile, "Cat", "ca", "zzzqqq")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), stdout)
	}
	for i, want := range []string{"cat\ttrie=true", "ca\ttrie=false", "zzzqqq\ttrie=false"} {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[0], "hash=true") || !strings.Contains(lines[2], "hash=false") {
		t.Errorf("hash results disagree with the trie:\n%s", stdout)
	}
}

func TestRun_Complete(t *testing.T) {
	wordFile := writeFile(t, t.TempDir(), "words.txt", words)

	code, stdout, stderr := runCLI(t, "", "complete", "--limit", "0", wordFile, "ca")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if got, want := stdout, "card\ncare\ncareful\ncat\n"; got != want {
		t.Errorf("complete output = %q, want %q", got, want)
	}
}

func TestRun_Menu(t *testing.T) {
	dir := t.TempDir()
	wordFile := writeFile(t, dir, "words.txt", words)

	input := strings.Join([]string{"0", wordFile, "1", "3", "mat", "6"}, "\n") + "\n"
	code, stdout, stderr := runCLI(t, input, "menu")
	if code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	for _, want := range []string{"Successfully loaded 13 words", "Trie: 'mat' FOUND", "Goodbye"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("menu output is missing %q:\n%s", want, stdout)
		}
	}
}

// Package menu runs the interactive benchmark session.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/shivanshs9/wordbench/internal/bench"
	"github.com/shivanshs9/wordbench/internal/logger"
	"github.com/shivanshs9/wordbench/internal/report"
	"github.com/shivanshs9/wordbench/internal/wordlist"
)

const (
	rule         = "========================================"
	wideRule     = "============================================================"
	completeSize = 20
)

// Options configures a Menu.
type Options struct {
	Bench         bench.Options
	CSVPath       string
	ReportPath    string
	TerminalWidth int
}

// Menu reads one choice per line from in and writes prompts and results to
// out. Errors from the session are shown to the user and the loop continues.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
	session *bench.Session
}

func New(in io.Reader, out io.Writer, opts Options) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		opts:    opts,
		session: bench.NewSession(opts.Bench),
	}
}

// Session exposes the containers built so far.
func (m *Menu) Session() *bench.Session {
	return m.session
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// prompt writes label and returns the next trimmed input line. ok is false
// once the input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) displayMenu() {
	m.printf("\n%s\n  Word Lookup Performance Benchmark\n%s\n", rule, rule)
	m.printf("0. Load Dataset from File\n")
	m.printf("1. Build Trie\n")
	m.printf("2. Build Hash Table\n")
	m.printf("3. Search for a Word\n")
	m.printf("4. Run Benchmark (Compare Lookup Time)\n")
	m.printf("5. Display Memory Usage\n")
	m.printf("6. Exit\n")
	m.printf("7. Prefix Search (Autocomplete)\n")
	m.printf("8. Remove a Word\n")
	m.printf("%s\n", rule)
}

// Run loops until the user exits or the input ends.
func (m *Menu) Run() error {
	for {
		m.displayMenu()
		line, ok := m.prompt("Enter your choice: ")
		if !ok {
			m.printf("\n")
			return m.in.Err()
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			m.printf("Invalid choice. Please try again.\n")
			continue
		}

		switch choice {
		case 0:
			m.load()
		case 1:
			m.buildTree()
		case 2:
			m.buildSet()
		case 3:
			m.search()
		case 4:
			m.benchmark()
		case 5:
			m.memory()
		case 6:
			m.printf("Exiting program. Goodbye!\n")
			return nil
		case 7:
			m.complete()
		case 8:
			m.remove()
		default:
			m.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (m *Menu) fail(err error) {
	logger.Debug("menu action failed", logger.WithError(err))
	switch {
	case errors.Is(err, bench.ErrNotBuilt):
		m.printf("Error: Please build the required data structures first.\n")
	default:
		m.printf("Error: %v\n", err)
	}
}

func (m *Menu) load() {
	filename, ok := m.prompt("Enter filename (e.g., words.txt): ")
	if !ok {
		return
	}
	if err := m.session.Load(filename); err != nil {
		m.fail(err)
		return
	}
	m.printf("Successfully loaded %d words from %s\n", len(m.session.Words()), filename)
}

func (m *Menu) buildTree() {
	m.printf("Building Trie with %d words...\n", len(m.session.Words()))
	elapsed, err := m.session.BuildTree()
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("Trie built successfully in %d ms\n", elapsed.Milliseconds())
}

func (m *Menu) buildSet() {
	m.printf("Building Hash Table with %d words...\n", len(m.session.Words()))
	elapsed, err := m.session.BuildSet()
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("Hash Table built successfully in %d ms\n", elapsed.Milliseconds())
}

func foundText(found bool) string {
	if found {
		return "FOUND"
	}

	return "NOT FOUND"
}

func (m *Menu) readWord(label string) (string, bool) {
	line, ok := m.prompt(label)
	if !ok {
		return "", false
	}

	return wordlist.Clean(line), true
}

func (m *Menu) search() {
	word, ok := m.readWord("Enter word to search: ")
	if !ok {
		return
	}
	tree, set, err := m.session.Search(word)
	if err != nil {
		m.fail(err)
		return
	}
	if tree != nil {
		m.printf("Trie: '%s' %s (Time: %d ns)\n", word, foundText(tree.Found), tree.Elapsed.Nanoseconds())
	}
	if set != nil {
		m.printf("Hash Table: '%s' %s (Time: %d ns)\n", word, foundText(set.Found), set.Elapsed.Nanoseconds())
	}
}

func (m *Menu) benchmark() {
	res, err := m.session.Benchmark()
	if err != nil {
		m.fail(err)
		return
	}

	m.printf("\nRunning benchmark with %d random queries...\n", res.Queries)
	report.PrintTable(m.out, res, m.opts.TerminalWidth)

	if err := report.SaveFiles(m.opts.CSVPath, m.opts.ReportPath, res); err != nil {
		m.fail(err)
		return
	}
	if m.opts.CSVPath != "" {
		m.printf("Results exported to '%s'\n", m.opts.CSVPath)
	}
	if m.opts.ReportPath != "" {
		m.printf("Detailed report saved to '%s'\n", m.opts.ReportPath)
	}
}

func kilobytes(b bytesize.ByteSize) int64 {
	return int64(b) / int64(bytesize.KB)
}

func (m *Menu) memory() {
	tree, set, err := m.session.Memory()
	if err != nil {
		m.fail(err)
		return
	}

	m.printf("\nMEMORY USAGE ESTIMATE:\n%s\n", wideRule)
	if tree != nil {
		m.printf("Trie: ~%d KB (%s)\n", kilobytes(*tree), *tree)
		m.printf("  - Nodes: %d\n", m.session.Tree().NodeCount())
	}
	if set != nil {
		hs := m.session.Set()
		m.printf("Hash Table: ~%d KB (%s)\n", kilobytes(*set), *set)
		m.printf("  - Bucket count: %d\n", hs.BucketCount())
		m.printf("  - Stored words: %d\n", hs.Len())
		m.printf("  - Longest chain: %d\n", hs.Stats().LongestChain)
	}
	m.printf("%s\nNote: Memory estimates are approximate\n", wideRule)
}

func (m *Menu) complete() {
	prefix, ok := m.readWord("Enter prefix: ")
	if !ok {
		return
	}
	words, err := m.session.Complete(prefix, completeSize)
	if err != nil {
		m.fail(err)
		return
	}
	if len(words) == 0 {
		m.printf("No words start with '%s'\n", prefix)
		return
	}
	m.printf("Words starting with '%s' (up to %d):\n", prefix, completeSize)
	for _, w := range words {
		m.printf("  %s\n", w)
	}
}

func (m *Menu) remove() {
	word, ok := m.readWord("Enter word to remove: ")
	if !ok {
		return
	}
	fromTree, fromSet, err := m.session.Remove(word)
	if err != nil {
		m.fail(err)
		return
	}
	if m.session.Tree() != nil {
		m.printf("Trie: '%s' %s\n", word, removedText(fromTree))
	}
	if m.session.Set() != nil {
		m.printf("Hash Table: '%s' %s\n", word, removedText(fromSet))
	}
}

func removedText(removed bool) string {
	if removed {
		return "REMOVED"
	}

	return "NOT FOUND"
}

// Package wordlist loads the words the benchmark is built from.
//
// Tokens are split on whitespace, folded to lower case, and stripped of every
// byte that is not an ASCII letter. Tokens left empty are dropped.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shivanshs9/wordbench/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoWords is returned when a source holds no usable word.
var ErrNoWords = errors.New("no words found")

// maxTokenSize bounds a single whitespace-delimited token.
const maxTokenSize = 1 << 20

// Clean lowercases token and keeps only the letters a-z.
func Clean(token string) string {
	lower := cases.Lower(language.Und).String(token)

	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		if c := lower[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// Read returns the cleaned words of r in order, duplicates included.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		if w := Clean(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	return words, nil
}

// Load reads the words of the file at path.
func Load(path string) ([]string, error) {
	reader, err := openFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open word list: %w", err)
	}
	defer reader.Close()

	logger.Info("loading word list", zap.String("file", path), zap.Stringer("size", reader.Size))

	words, err := Read(reader)
	if err != nil {
		return nil, fmt.Errorf("could not read word list %s: %w", path, err)
	}

	logger.Info("loaded word list", zap.String("file", path), zap.Int("words", len(words)))

	return words, nil
}

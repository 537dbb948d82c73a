package bench

import (
	"errors"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/shivanshs9/wordbench/internal/bucketset"
	"github.com/shivanshs9/wordbench/internal/logger"
	"github.com/shivanshs9/wordbench/internal/prefixtree"
	"github.com/shivanshs9/wordbench/internal/wordlist"
)

var (
	ErrNoWords  = errors.New("no words loaded, load a dataset first")
	ErrNotBuilt = errors.New("data structure has not been built")
)

// Options controls how a Session builds and queries its containers.
type Options struct {
	Buckets int
	Queries int
	Seed    uint64
}

// Session owns one word list and the containers built from it. Rebuilding a
// container replaces the previous one.
type Session struct {
	opts Options

	words    []string
	distinct []string

	tree      *prefixtree.Tree
	treeBuild time.Duration
	set       *bucketset.Set
	setBuild  time.Duration
}

func NewSession(opts Options) *Session {
	return &Session{opts: opts}
}

// Load replaces the word list. Containers built from the previous list are
// dropped.
func (s *Session) Load(path string) error {
	words, err := wordlist.Load(path)
	if err != nil {
		return err
	}
	s.SetWords(words)

	return nil
}

func (s *Session) SetWords(words []string) {
	s.words = words
	s.distinct = wordlist.Distinct(words)
	s.tree, s.treeBuild = nil, 0
	s.set, s.setBuild = nil, 0
}

func (s *Session) Words() []string {
	return s.words
}

func (s *Session) Tree() *prefixtree.Tree {
	return s.tree
}

func (s *Session) Set() *bucketset.Set {
	return s.set
}

// BuildTree fills the session's tree from the word list, clearing the words
// of any earlier build.
func (s *Session) BuildTree() (time.Duration, error) {
	if len(s.words) == 0 {
		return 0, ErrNoWords
	}
	if s.tree == nil {
		s.tree = prefixtree.New()
	} else {
		s.tree.Clear()
	}
	s.treeBuild = fill(s.words, s.tree.Insert)
	logger.Info("built prefix tree",
		logger.WithInt("words", s.tree.Len()),
		logger.WithInt("nodes", s.tree.NodeCount()),
		logger.WithDuration("elapsed", s.treeBuild),
	)

	return s.treeBuild, nil
}

// BuildSet fills the session's set from the word list. A rebuild keeps the
// bucket count.
func (s *Session) BuildSet() (time.Duration, error) {
	if len(s.words) == 0 {
		return 0, ErrNoWords
	}
	if s.set == nil {
		s.set = bucketset.New(s.opts.Buckets)
	} else {
		s.set.Clear()
	}
	s.setBuild = fill(s.words, s.set.Insert)
	logger.Info("built bucketed set",
		logger.WithInt("words", s.set.Len()),
		logger.WithInt("buckets", s.set.BucketCount()),
		logger.WithDuration("elapsed", s.setBuild),
	)

	return s.setBuild, nil
}

// Lookup is the outcome of searching one word in one container.
type Lookup struct {
	Found   bool
	Elapsed time.Duration
}

// Search looks word up in every built container. A nil field means that
// container has not been built.
func (s *Session) Search(word string) (tree, set *Lookup, err error) {
	if s.tree == nil && s.set == nil {
		return nil, nil, ErrNotBuilt
	}
	if s.tree != nil {
		start := time.Now()
		found := s.tree.Contains(word)
		tree = &Lookup{Found: found, Elapsed: time.Since(start)}
	}
	if s.set != nil {
		start := time.Now()
		found := s.set.Contains(word)
		set = &Lookup{Found: found, Elapsed: time.Since(start)}
	}

	return tree, set, nil
}

// Remove deletes word from every built container and reports, per container,
// whether it was present.
func (s *Session) Remove(word string) (fromTree, fromSet bool, err error) {
	if s.tree == nil && s.set == nil {
		return false, false, ErrNotBuilt
	}
	if s.tree != nil {
		fromTree = s.tree.Remove(word)
	}
	if s.set != nil {
		fromSet = s.set.Remove(word)
	}

	return fromTree, fromSet, nil
}

// Complete lists up to limit stored words starting with prefix.
func (s *Session) Complete(prefix string, limit int) ([]string, error) {
	if s.tree == nil {
		return nil, ErrNotBuilt
	}

	return s.tree.KeysWithPrefix(prefix, limit), nil
}

// Memory estimates the size of every built container. A nil result means
// that container has not been built.
func (s *Session) Memory() (tree, set *bytesize.ByteSize, err error) {
	if s.tree == nil && s.set == nil {
		return nil, nil, ErrNotBuilt
	}
	if s.tree != nil {
		size := EstimateTreeMemory(s.tree)
		tree = &size
	}
	if s.set != nil {
		size := EstimateSetMemory(s.set)
		set = &size
	}

	return tree, set, nil
}

// Benchmark times the configured number of random lookups on both
// containers using one shared query list.
func (s *Session) Benchmark() (Result, error) {
	if s.tree == nil || s.set == nil {
		return Result{}, ErrNotBuilt
	}

	queries := SampleQueries(s.words, s.opts.Queries, s.opts.Seed)
	logger.Info("running benchmark", logger.WithInt("queries", len(queries)))

	res := Result{
		Words:    len(s.words),
		Distinct: len(s.distinct),
		Queries:  len(queries),
		Buckets:  s.set.BucketCount(),
		Chains:   s.set.Stats(),
	}

	res.Trie.Build = s.treeBuild
	res.Trie.Found, res.Trie.LookupTotal = TimeLookups(queries, s.tree.Contains)
	res.Trie.Memory = EstimateTreeMemory(s.tree)

	res.Table.Build = s.setBuild
	res.Table.Found, res.Table.LookupTotal = TimeLookups(queries, s.set.Contains)
	res.Table.Memory = EstimateSetMemory(s.set)

	return res, nil
}

// Run builds both containers from words and benchmarks them.
func Run(words []string, opts Options) (Result, error) {
	s := NewSession(opts)
	s.SetWords(words)
	if _, err := s.BuildTree(); err != nil {
		return Result{}, err
	}
	if _, err := s.BuildSet(); err != nil {
		return Result{}, err
	}

	return s.Benchmark()
}

// Package bench builds both word containers from the same word list and
// times them against each other.
package bench

import (
	"math/rand/v2"
	"time"
	"unsafe"

	"github.com/inhies/go-bytesize"
	"github.com/shivanshs9/wordbench/internal/bucketset"
	"github.com/shivanshs9/wordbench/internal/prefixtree"
)

// Measurement holds what was observed for one container.
type Measurement struct {
	Build       time.Duration
	Found       int
	LookupTotal time.Duration
	Memory      bytesize.ByteSize
}

// AvgLookupMicros is the mean lookup time in microseconds.
func (m Measurement) AvgLookupMicros(queries int) float64 {
	if queries <= 0 {
		return 0
	}

	return float64(m.LookupTotal.Nanoseconds()) / 1e3 / float64(queries)
}

// Result is one benchmark run over both containers.
type Result struct {
	Words    int
	Distinct int
	Queries  int
	Buckets  int
	Chains   bucketset.ChainStats

	Trie  Measurement
	Table Measurement
}

// fill inserts every word and returns the elapsed time.
func fill(words []string, insert func(string) bool) time.Duration {
	start := time.Now()
	for _, w := range words {
		insert(w)
	}

	return time.Since(start)
}

func BuildTree(words []string) (*prefixtree.Tree, time.Duration) {
	tree := prefixtree.New()
	return tree, fill(words, tree.Insert)
}

func BuildSet(words []string, buckets int) (*bucketset.Set, time.Duration) {
	set := bucketset.New(buckets)
	return set, fill(words, set.Insert)
}

// SampleQueries picks n words from words uniformly with replacement.
// A zero seed draws a fresh one.
func SampleQueries(words []string, n int, seed uint64) []string {
	if len(words) == 0 || n <= 0 {
		return nil
	}
	if seed == 0 {
		seed = rand.Uint64()
	}

	prng := rand.New(rand.NewPCG(seed, seed))
	queries := make([]string, n)
	for i := range queries {
		queries[i] = words[prng.IntN(len(words))]
	}

	return queries
}

// TimeLookups runs contains over every query and returns the hits and the
// total elapsed time.
func TimeLookups(queries []string, contains func(string) bool) (int, time.Duration) {
	found := 0
	start := time.Now()
	for _, q := range queries {
		if contains(q) {
			found++
		}
	}

	return found, time.Since(start)
}

const (
	nodeBytes  = 16 // map pointer and end-of-word flag, padded
	mapHeader  = 48
	edgeBytes  = 16
	sliceBytes = int(unsafe.Sizeof([]string(nil)))
	strHeader  = int(unsafe.Sizeof(""))
)

// EstimateTreeMemory approximates the bytes held by tree's nodes.
func EstimateTreeMemory(tree *prefixtree.Tree) bytesize.ByteSize {
	nodes := tree.NodeCount()
	total := nodes*(nodeBytes+mapHeader) + (nodes-1)*edgeBytes

	return bytesize.New(float64(total))
}

// EstimateSetMemory approximates the bytes held by set's buckets and the
// keys currently stored in them.
func EstimateSetMemory(set *bucketset.Set) bytesize.ByteSize {
	total := set.BucketCount()*sliceBytes + set.Len()*strHeader + set.KeyBytes()

	return bytesize.New(float64(total))
}

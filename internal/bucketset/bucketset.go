// Package bucketset implements a string set as a fixed number of buckets,
// each holding a chain of keys.
//
// The bucket count never changes after construction. A badly distributed key
// set makes chains long and every operation on them linear; that is the
// behavior being measured, so there is no rehashing.
package bucketset

const (
	// DefaultBucketCount is the bucket count used by the benchmark harness.
	DefaultBucketCount = 32768

	// MinBucketCount replaces a requested bucket count below 1.
	MinBucketCount = 8
)

// Set is a hash set of strings with separate chaining. It is not safe for
// concurrent use. The zero value is an empty set with MinBucketCount buckets.
type Set struct {
	buckets  [][]string
	size     int
	keyBytes int
}

// New returns an empty set with bucketCount buckets. A count below 1 is
// replaced with MinBucketCount so bucket selection never divides by zero.
func New(bucketCount int) *Set {
	if bucketCount < 1 {
		bucketCount = MinBucketCount
	}
	return &Set{
		buckets: make([][]string, bucketCount),
	}
}

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// hash is 64-bit FNV-1a followed by the murmur3 finalizer, so the low bits
// used by the modulo depend on every input byte.
func hash(key string) uint64 {
	h := uint64(offset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

func (s *Set) lazyInit() {
	if len(s.buckets) == 0 {
		s.buckets = make([][]string, MinBucketCount)
	}
}

// BucketIndex returns the bucket that holds key.
func (s *Set) BucketIndex(key string) int {
	s.lazyInit()
	return int(hash(key) % uint64(len(s.buckets)))
}

// Insert adds key and reports whether it was not already present.
func (s *Set) Insert(key string) bool {
	i := s.BucketIndex(key)
	for _, k := range s.buckets[i] {
		if k == key {
			return false
		}
	}
	s.buckets[i] = append(s.buckets[i], key)
	s.size++
	s.keyBytes += len(key)
	return true
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key string) bool {
	for _, k := range s.buckets[s.BucketIndex(key)] {
		if k == key {
			return true
		}
	}
	return false
}

// Remove deletes key and reports whether it was present. The last key of the
// chain takes the removed key's slot, so chain order is not kept.
func (s *Set) Remove(key string) bool {
	i := s.BucketIndex(key)
	chain := s.buckets[i]
	for j, k := range chain {
		if k != key {
			continue
		}
		last := len(chain) - 1
		chain[j] = chain[last]
		chain[last] = ""
		s.buckets[i] = chain[:last]
		s.size--
		s.keyBytes -= len(key)
		return true
	}
	return false
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return s.size
}

// KeyBytes returns the total length of the stored keys.
func (s *Set) KeyBytes() int {
	return s.keyBytes
}

// BucketCount returns the fixed number of buckets.
func (s *Set) BucketCount() int {
	s.lazyInit()
	return len(s.buckets)
}

// ChainStats describes how keys are spread over the buckets.
type ChainStats struct {
	UsedBuckets  int
	LongestChain int

	// MeanChain is averaged over used buckets only.
	MeanChain float64
}

// Stats scans every bucket and returns the chain length distribution.
func (s *Set) Stats() ChainStats {
	var st ChainStats
	for _, chain := range s.buckets {
		if len(chain) == 0 {
			continue
		}
		st.UsedBuckets++
		if len(chain) > st.LongestChain {
			st.LongestChain = len(chain)
		}
	}
	if st.UsedBuckets > 0 {
		st.MeanChain = float64(s.size) / float64(st.UsedBuckets)
	}
	return st
}

// Clear removes every key and keeps the bucket count.
func (s *Set) Clear() {
	for i := range s.buckets {
		s.buckets[i] = nil
	}
	s.size = 0
	s.keyBytes = 0
}

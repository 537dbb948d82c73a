// Package prefixtree implements a character trie holding a set of strings.
//
// Characters are the bytes of the input string, so every Go string is a valid
// key, including the empty string and strings outside [a-z].
//
// A Tree is not safe for concurrent use.
package prefixtree

import (
	"sort"
)

type node struct {
	children  map[byte]*node
	endOfWord bool
}

func newNode() *node {
	return &node{
		children: make(map[byte]*node),
	}
}

// Tree is a set of strings stored along shared prefix paths.
type Tree struct {
	root  *node
	words int
	nodes int
}

// New returns an empty tree holding only the root node.
func New() *Tree {
	return &Tree{
		root:  newNode(),
		nodes: 1,
	}
}

// Insert adds word to the tree and reports whether it was not already present.
func (t *Tree) Insert(word string) bool {
	now := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		next, exists := now.children[c]
		if !exists {
			next = newNode()
			now.children[c] = next
			t.nodes++
		}
		now = next
	}
	if now.endOfWord {
		return false
	}
	now.endOfWord = true
	t.words++
	return true
}

// find walks the path spelled by s and returns the last node, or nil if the
// path breaks off.
func (t *Tree) find(s string) *node {
	now := t.root
	for i := 0; i < len(s); i++ {
		next, exists := now.children[s[i]]
		if !exists {
			return nil
		}
		now = next
	}
	return now
}

// Contains reports whether word was inserted and not removed since.
func (t *Tree) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.endOfWord
}

// HasPrefix reports whether any path in the tree spells prefix. It does not
// require a stored word to end there.
func (t *Tree) HasPrefix(prefix string) bool {
	return t.find(prefix) != nil
}

// Remove deletes word and prunes every node left without children and
// without a word ending on it. It reports whether word was present.
func (t *Tree) Remove(word string) bool {
	found, _ := t.remove(t.root, word, 0)
	if found {
		t.words--
	}
	return found
}

// remove returns whether word was found below n, and whether n itself can now
// be detached by its parent.
func (t *Tree) remove(n *node, word string, depth int) (found, prunable bool) {
	if depth == len(word) {
		if !n.endOfWord {
			return false, false
		}
		n.endOfWord = false
		return true, len(n.children) == 0
	}

	c := word[depth]
	child, exists := n.children[c]
	if !exists {
		return false, false
	}

	found, prunable = t.remove(child, word, depth+1)
	if !prunable {
		return found, false
	}
	delete(n.children, c)
	t.nodes--
	return true, len(n.children) == 0 && !n.endOfWord
}

// Len returns the number of stored words.
func (t *Tree) Len() int {
	return t.words
}

// NodeCount returns the number of live nodes, the root included.
func (t *Tree) NodeCount() int {
	return t.nodes
}

// KeysWithPrefix returns the stored words starting with prefix in
// lexicographic byte order. At most limit words are returned unless limit <= 0.
func (t *Tree) KeysWithPrefix(prefix string, limit int) []string {
	start := t.find(prefix)
	if start == nil {
		return nil
	}

	var keys []string
	buf := []byte(prefix)
	var walk func(n *node) bool
	walk = func(n *node) bool {
		if n.endOfWord {
			keys = append(keys, string(buf))
			if limit > 0 && len(keys) >= limit {
				return false
			}
		}
		for _, c := range sortedEdges(n) {
			buf = append(buf, c)
			more := walk(n.children[c])
			buf = buf[:len(buf)-1]
			if !more {
				return false
			}
		}
		return true
	}
	walk(start)

	return keys
}

func sortedEdges(n *node) []byte {
	edges := make([]byte, 0, len(n.children))
	for c := range n.children {
		edges = append(edges, c)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return edges
}

// Clear drops every word and node, leaving a fresh root.
func (t *Tree) Clear() {
	t.root = newNode()
	t.words = 0
	t.nodes = 1
}

package wordlist

type Set map[string]struct{}

func (set Set) Add(word string) {
	set[word] = struct{}{}
}

func (set Set) Has(word string) bool {
	_, ok := set[word]
	return ok
}

// Distinct returns words without repeats, keeping first occurrences in order.
func Distinct(words []string) []string {
	seen := make(Set, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if seen.Has(w) {
			continue
		}
		seen.Add(w)
		unique = append(unique, w)
	}

	return unique
}

package wordfreq

// Table maps a word to its number of occurrences.
type Table map[string]int

func Count(words []string) Table {
	t := make(Table)
	t.Add(words...)
	return t
}

func (t Table) Add(words ...string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		t[w]++
	}
}

func (t Table) Merge(other Table) {
	for w, n := range other {
		if n <= 0 {
			continue
		}
		t[w] += n
	}
}

func (t Table) Len() int {
	return len(t)
}

// Total returns the number of words counted, duplicates included.
func (t Table) Total() int {
	var n int
	for _, c := range t {
		n += c
	}
	return n
}

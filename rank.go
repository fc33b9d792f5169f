package wordfreq

import (
	"sort"
	"strconv"
)

type Entry struct {
	Count int
	Word  string
}

func (e Entry) String() string {
	return strconv.Itoa(e.Count) + " " + e.Word
}

// Less orders entries by count descending then by word ascending.
func (e Entry) Less(other Entry) bool {
	if e.Count == other.Count {
		return e.Word < other.Word
	}
	return e.Count > other.Count
}

// Rank returns one entry per word of t. The order does not depend on the
// iteration order of t.
func Rank(t Table) []Entry {
	if len(t) == 0 {
		return nil
	}
	list := make([]Entry, 0, len(t))
	for w, n := range t {
		list = append(list, Entry{Count: n, Word: w})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Less(list[j])
	})
	return list
}

// Top keeps the n first entries. A limit lower or equal to zero keeps
// everything.
func Top(list []Entry, n int) []Entry {
	if n <= 0 || n >= len(list) {
		return list
	}
	return list[:n]
}

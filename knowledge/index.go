package knowledge

import "strings"

// Entry is one immutable keyword to fact pair. Keywords are unique within an
// index and matched case-insensitively.
type Entry struct {
	Keyword string
	Fact    string
}

// Index is a read-only keyword lookup table. It performs no locking: the
// entry slice is never mutated after construction, so concurrent reads are
// safe by construction.
type Index struct {
	entries []Entry
}

// NewIndex builds an index from the given entries, preserving their order.
// Keywords are lowercased once here so Search and Citations only lowercase
// the query.
func NewIndex(entries []Entry) *Index {
	owned := make([]Entry, len(entries))
	for i, e := range entries {
		owned[i] = Entry{Keyword: strings.ToLower(e.Keyword), Fact: e.Fact}
	}
	return &Index{entries: owned}
}

// Search returns the facts of every entry whose keyword is a substring of the
// lowercased query, in table insertion order. No ranking, no deduplication;
// an empty slice when nothing matches.
func (x *Index) Search(query string) []string {
	lower := strings.ToLower(query)
	results := []string{}
	for _, e := range x.entries {
		if strings.Contains(lower, e.Keyword) {
			results = append(results, e.Fact)
		}
	}
	return results
}

// Citations applies the same matching rule as Search but emits citation
// labels instead of fact text, in the same order Search would find them.
func (x *Index) Citations(query string) []string {
	lower := strings.ToLower(query)
	citations := []string{}
	for _, e := range x.entries {
		if strings.Contains(lower, e.Keyword) {
			citations = append(citations, "Knowledge Base: "+e.Keyword)
		}
	}
	return citations
}

// Len returns the number of entries in the table.
func (x *Index) Len() int { return len(x.entries) }

package transcript

import "time"

// Record is one parsed chat line plus any continuation lines appended to it.
type Record struct {
	Date    string
	Time    string
	Author  string
	Message string
	At      time.Time

	// Derived columns, filled once during table enrichment.
	SentimentScore    float64
	SentimentCategory string
	WordCount         int
	Hour              int
}

// Table holds the parsed transcript in source order. It is built once by the
// parser and never mutated by the analytics modules.
type Table struct {
	Records []Record
}

// Empty reports whether nothing survived parsing.
func (t *Table) Empty() bool {
	return t == nil || len(t.Records) == 0
}

// Participants returns the distinct authors in first-encountered order.
func (t *Table) Participants() []string {
	seen := make(map[string]struct{}, 8)
	var authors []string
	for _, rec := range t.Records {
		if _, ok := seen[rec.Author]; ok {
			continue
		}
		seen[rec.Author] = struct{}{}
		authors = append(authors, rec.Author)
	}
	return authors
}

package diag

import "sort"

// Bag accumulates diagnostics up to a fixed limit.
//
// The validator never stops at the first problem: every check appends to
// the bag and the caller inspects the full list at the end.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a bag that holds at most max diagnostics.
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add appends a diagnostic. Returns false when the limit is reached and
// the diagnostic was discarded.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// AddError is shorthand for Add(NewError(...)).
func (b *Bag) AddError(code Code, path, msg string) bool {
	return b.Add(NewError(code, path, msg))
}

// HasErrors reports whether at least one diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns the underlying slice. Callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Strings renders every diagnostic message, in current bag order.
func (b *Bag) Strings() []string {
	out := make([]string, len(b.items))
	for i, d := range b.items {
		out[i] = d.String()
	}
	return out
}

// Merge appends diagnostics from another bag, growing the limit if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by path, then severity (descending), then code,
// for deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup drops exact repeats (same code, path and message).
func (b *Bag) Dedup() {
	type key struct {
		code Code
		path string
		msg  string
	}
	seen := make(map[key]bool, len(b.items))
	kept := b.items[:0]
	for _, d := range b.items {
		k := key{d.Code, d.Path, d.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, d)
	}
	b.items = kept
}

package diag

type Bag struct {
	items []Diagnostic
	max   int // <= 0: unlimited
}

func NewBag(max int) *Bag {
	capHint := max
	if capHint <= 0 || capHint > 64 {
		capHint = 16
	}
	return &Bag{
		items: make([]Diagnostic, 0, capHint),
		max:   max,
	}
}

func (b *Bag) full() bool {
	return b.max > 0 && len(b.items) >= b.max
}

// Add appends d unless the bag is full.
// Returns false when the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.full() {
		return false
	}
	d.HasFile = d.HasFile || d.Filename != ""
	b.items = append(b.items, d)
	return true
}

// Record appends a diagnostic assembled from its parts. The message and
// filename are stored by value, so callers may reuse their buffers.
func (b *Bag) Record(sev Severity, cat Category, code Code, msg, file string, line, col, length uint32) bool {
	return b.Add(Diagnostic{
		Severity: sev,
		Category: cat,
		Code:     code,
		Message:  msg,
		Filename: file,
		HasFile:  file != "",
		Line:     line,
		Column:   col,
		Length:   length,
	})
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

// Count returns how many diagnostics have exactly the given severity.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity == sev {
			n++
		}
	}
	return n
}

func (b *Bag) Len() int {
	return len(b.items)
}

func (b *Bag) Get(i int) Diagnostic {
	return b.items[i]
}

// Items returns the stored diagnostics in insertion order.
// The slice aliases the bag; do not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Clear drops every stored diagnostic and releases the backing array.
func (b *Bag) Clear() {
	b.items = nil
}

// Merge appends all diagnostics from other.
// The limit grows if needed to hold both.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if b.max > 0 && newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
}

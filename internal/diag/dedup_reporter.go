package diag

type dedupKey struct {
	code   Code
	sev    Severity
	file   string
	line   uint32
	column uint32
	msg    string
}

// DedupReporter wraps another Reporter and suppresses duplicate diagnostics
// with the same code, severity, position and message.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique diagnostics to the provided reporter.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(code Code, sev Severity, at Location, msg string) {
	if r == nil {
		return
	}
	key := dedupKey{
		code:   code,
		sev:    sev,
		file:   at.Filename,
		line:   at.Line,
		column: at.Column,
		msg:    msg,
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, at, msg)
	}
}

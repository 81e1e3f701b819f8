package diag

// Reporter is the minimal contract passes use to emit diagnostics.
// Implementations: BagReporter (stores into a Bag) and DedupReporter.
type Reporter interface {
	Report(code Code, sev Severity, at Location, msg string)
}

// BagReporter writes into *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, at Location, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(New(sev, code, at, msg))
}

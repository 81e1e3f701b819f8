// Package trace records what the pal front end is doing.
//
// Tracing is driven by two CLI flags:
//
//	pal diag --trace=- --trace-level=phase src/
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when disabled
//   - StreamTracer: writes each event to a file or stderr
//   - RingTracer: keeps the last events in memory for failure dumps
//   - MultiTracer: combines several tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: pass boundaries kept in the ring, dumped on failure
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything, including parser recovery points
//
// # Events
//
// Every event below the driver scope names the source file it concerns.
// Parser recovery points are emitted with Sync and carry the half-open
// token index range that was skipped, plus the position and kind of the
// token parsing resumed at:
//
//	[    42]   • node:sync @src/a.pal #7:10 (skipped 3) {at=2:5, stop=Ident}
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.BeginFile(trace.FromContext(ctx), trace.ScopePass, "parse", path, trace.CurrentSpan(ctx))
//	defer span.End("")
package trace

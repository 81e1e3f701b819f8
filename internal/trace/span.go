package trace

import (
	"fmt"
	"sync/atomic"
	"time"
)

var (
	globalSeq   atomic.Uint64
	globalSpans atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return globalSeq.Add(1)
}

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 {
	return globalSpans.Add(1)
}

// Span tracks one begin/end pair.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	name     string
	file     string
	started  time.Time
	extra    map[string]string
}

func emits(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

// Begin starts a span that is not tied to a source file.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	return BeginFile(t, scope, name, "", parent)
}

// BeginFile starts a span over work on file and emits its KindSpanBegin
// event. A disabled tracer or a scope filtered out by the level yields an
// inert span that still reports parent from ID.
func BeginFile(t Tracer, scope Scope, name, file string, parent uint64) *Span {
	if !emits(t, scope) {
		return &Span{tracer: Nop, parentID: parent, file: file}
	}

	id := NextSpanID()
	now := time.Now()
	t.Emit(&Event{
		Time:     now,
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   id,
		ParentID: parent,
		Name:     name,
		File:     file,
	})

	return &Span{
		tracer:   t,
		id:       id,
		parentID: parent,
		scope:    scope,
		name:     name,
		file:     file,
		started:  now,
	}
}

// End emits the KindSpanEnd event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil || !s.tracer.Enabled() {
		return 0
	}

	dur := time.Since(s.started)
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Name:     s.name,
		File:     s.file,
		Detail:   detail,
		Extra:    s.extra,
	})
	return dur
}

// WithExtra adds a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil || !s.tracer.Enabled() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, or the parent ID for an inert span so children
// still attach to the nearest recorded ancestor.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	if s.id == 0 {
		return s.parentID
	}
	return s.id
}

// Point emits an instant event at the span's scope, attached to the span
// and labelled with its file.
func (s *Span) Point(name, detail string) {
	if s == nil || !emits(s.tracer, s.scope) {
		return
	}
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    s.scope,
		ParentID: s.ID(),
		Name:     name,
		File:     s.file,
		Detail:   detail,
	})
}

// Point emits an instant event.
func Point(t Tracer, scope Scope, name, detail string, parent uint64, extra map[string]string) {
	if !emits(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		Name:     name,
		Detail:   detail,
		Extra:    extra,
	})
}

// Sync records a parser recovery point: the tokens skipped in file and the
// position and kind of the token parsing resumed at.
func Sync(t Tracer, parent uint64, file string, skipped TokenRange, at, stop string) {
	if !emits(t, ScopeNode) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    ScopeNode,
		ParentID: parent,
		Name:     "sync",
		File:     file,
		Tokens:   &skipped,
		Detail:   fmt.Sprintf("skipped %d", skipped.Len()),
		Extra:    map[string]string{"at": at, "stop": stop},
	})
}

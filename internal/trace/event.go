package trace

import (
	"fmt"
	"time"
)

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower numeric values represent coarser events.
type Scope uint8

const (
	// ScopeDriver covers a whole CLI command.
	ScopeDriver Scope = iota + 1
	// ScopePass covers one front-end pass (lex, parse) over one file.
	ScopePass
	// ScopeFile covers per-file work inside a directory run.
	ScopeFile
	// ScopeNode covers parser-internal events such as panic-mode recovery.
	ScopeNode
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeNode:
		return "node"
	default:
		return "unknown"
	}
}

// TokenRange is the half-open range [From, To) of indices into one file's
// token slice.
type TokenRange struct {
	From, To int
}

func (r TokenRange) Len() int { return r.To - r.From }

func (r TokenRange) String() string { return fmt.Sprintf("%d:%d", r.From, r.To) }

// Event is one trace record. File and Tokens tie it to the source it
// concerns: File is set for everything below the driver scope, Tokens only
// on parser recovery points.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the receiving tracer
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for root spans
	Name     string // "pal diag", "file", "lex", "parse", "cache", "sync"
	File     string
	Tokens   *TokenRange
	Detail   string
	Extra    map[string]string
}

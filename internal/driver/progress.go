package driver

import "time"

// Status is where one file stands within a run.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Pass names the per-file step a working event refers to.
type Pass string

const (
	PassLoad  Pass = "load"
	PassCache Pass = "cache"
	PassLex   Pass = "lex"
	PassParse Pass = "parse"
)

// Event reports progress for a file, or for the whole run when File is empty.
type Event struct {
	File    string
	Pass    Pass
	Status  Status
	Elapsed time.Duration
}

// ProgressSink consumes progress events. OnEvent is called from worker
// goroutines and must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- ev
}

func notify(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}

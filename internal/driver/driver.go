package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"fortio.org/safecast"
	"github.com/ztrue/tracerr"
	"golang.org/x/sync/errgroup"

	"pal/internal/diag"
	"pal/internal/lexer"
	"pal/internal/observ"
	"pal/internal/parser"
	"pal/internal/source"
	"pal/internal/token"
	"pal/internal/trace"
)

// Stage is how far the driver takes each file.
type Stage uint8

const (
	StageTokenize Stage = iota
	StageParse
	// StageDiagnose parses like StageParse but may answer from the DiskCache.
	StageDiagnose
)

func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageParse:
		return "parse"
	case StageDiagnose:
		return "diagnose"
	}
	return "stage(?)"
}

type Options struct {
	MaxDiagnostics int // per file; 0 is unlimited
	Jobs           int // 0 uses GOMAXPROCS
	Cache          *DiskCache
	Timer          *observ.Timer
	Progress       ProgressSink // nil disables progress events
}

// FileResult is what one file produced. Tokens and Parse are nil when the
// diagnostics came from the cache or the file could not be loaded.
type FileResult struct {
	Path   string
	FileID source.FileID
	Loaded bool
	Tokens []token.Token
	Parse  *parser.Result
	Bag    *diag.Bag
	Cached bool
}

type Run struct {
	Stage   Stage
	FileSet *source.FileSet
	Files   []FileResult
}

// Counts tallies errors (critical included) and warnings over all files.
func (r *Run) Counts() (errs, warnings int) {
	for i := range r.Files {
		bag := r.Files[i].Bag
		if bag == nil {
			continue
		}
		errs += bag.Count(diag.SevError) + bag.Count(diag.SevCritical)
		warnings += bag.Count(diag.SevWarning)
	}
	return errs, warnings
}

func (r *Run) HasErrors() bool {
	for i := range r.Files {
		if bag := r.Files[i].Bag; bag != nil && bag.HasErrors() {
			return true
		}
	}
	return false
}

// Bag merges the per-file bags in file order.
func (r *Run) Bag() *diag.Bag {
	out := diag.NewBag(0)
	for i := range r.Files {
		out.Merge(r.Files[i].Bag)
	}
	return out
}

func Tokenize(ctx context.Context, path string, opts Options) (*Run, error) {
	return run(ctx, StageTokenize, path, opts)
}

func Parse(ctx context.Context, path string, opts Options) (*Run, error) {
	return run(ctx, StageParse, path, opts)
}

func Diagnose(ctx context.Context, path string, opts Options) (*Run, error) {
	return run(ctx, StageDiagnose, path, opts)
}

func run(ctx context.Context, stage Stage, path string, opts Options) (*Run, error) {
	loadIdx := opts.Timer.Begin("load")
	notify(opts.Progress, Event{Pass: PassLoad, Status: StatusWorking})
	paths, err := ListInputs(path)
	if err != nil {
		opts.Timer.End(loadIdx, "")
		return nil, err
	}

	// FileSet is not safe for concurrent writes: load everything up front,
	// workers only read.
	fileSet := source.NewFileSet()
	results := make([]FileResult, len(paths))
	loadErrs := make([]error, len(paths))
	for i, p := range paths {
		results[i] = FileResult{Path: p}
		id, err := fileSet.Load(p)
		if err != nil {
			loadErrs[i] = err
			continue
		}
		results[i].FileID, results[i].Loaded = id, true
	}
	opts.Timer.End(loadIdx, fmt.Sprintf("%d files", len(paths)))
	for _, p := range paths {
		notify(opts.Progress, Event{File: p, Status: StatusQueued})
	}

	out := &Run{Stage: stage, FileSet: fileSet, Files: results}
	if len(paths) == 0 {
		return out, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i := range results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each slot is owned by exactly one goroutine.
			r := &results[i]
			r.Bag = diag.NewBag(opts.MaxDiagnostics)
			start := time.Now()
			if loadErrs[i] != nil {
				r.Bag.Add(diag.NewError(diag.IOLoadFileError, diag.Location{Filename: r.Path},
					"failed to load file: "+loadErrs[i].Error()))
			} else if err := guard(r.Path, func() {
				processFile(gctx, stage, fileSet.Get(r.FileID), r, opts)
			}); err != nil {
				return err
			}
			status := StatusDone
			if r.Bag.HasErrors() {
				status = StatusError
			}
			notify(opts.Progress, Event{File: r.Path, Status: status, Elapsed: time.Since(start)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}

// guard turns a panic inside fn into an error that keeps the stack of
// the panicking goroutine.
func guard(path string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = tracerr.Wrap(fmt.Errorf("internal error while processing %s: %v", path, r))
		}
	}()
	fn()
	return nil
}

func processFile(ctx context.Context, stage Stage, file *source.File, r *FileResult, opts Options) {
	tracer := trace.FromContext(ctx)
	fileSpan := trace.BeginFile(tracer, trace.ScopeFile, "file", r.Path, trace.CurrentSpan(ctx))
	defer func() {
		fileSpan.End(fmt.Sprintf("%d diagnostics", r.Bag.Len()))
	}()

	var key [32]byte
	useCache := stage == StageDiagnose && opts.Cache != nil
	if useCache {
		key = CacheKey(file.Hash, opts.MaxDiagnostics)
		notify(opts.Progress, Event{File: r.Path, Pass: PassCache, Status: StatusWorking})
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			fileSpan.Point("cache", "read failed: "+err.Error())
		case ok:
			payload.restore(r.Bag, r.Path, r.FileID)
			r.Cached = true
			fileSpan.Point("cache", "hit")
			return
		}
	}

	// one reporter per file so lexer and parser share the duplicate filter
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: r.Bag})

	notify(opts.Progress, Event{File: r.Path, Pass: PassLex, Status: StatusWorking})
	lexIdx := opts.Timer.Begin("lex " + r.Path)
	lexSpan := trace.BeginFile(tracer, trace.ScopePass, "lex", r.Path, fileSpan.ID())
	r.Tokens = lexer.New(file, lexer.Options{Reporter: reporter, Filename: r.Path}).All()
	lexSpan.End(fmt.Sprintf("%d tokens", len(r.Tokens)))
	opts.Timer.End(lexIdx, fmt.Sprintf("%d tokens", len(r.Tokens)))
	if stage == StageTokenize {
		return
	}

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		maxErrors = 0
	}
	notify(opts.Progress, Event{File: r.Path, Pass: PassParse, Status: StatusWorking})
	parseIdx := opts.Timer.Begin("parse " + r.Path)
	parseSpan := trace.BeginFile(tracer, trace.ScopePass, "parse", r.Path, fileSpan.ID())
	r.Parse = parser.ParseTokens(r.Tokens, parser.Options{
		Reporter:   reporter,
		MaxErrors:  maxErrors,
		Filename:   r.Path,
		Tracer:     tracer,
		ParentSpan: parseSpan.ID(),
	})
	parseSpan.End(fmt.Sprintf("%d errors", r.Parse.Errors))
	opts.Timer.End(parseIdx, fmt.Sprintf("%d exprs", r.Parse.Builder.Exprs.Arena.Len()))

	if useCache {
		if err := opts.Cache.Put(key, payloadFromBag(r.Path, len(r.Tokens), r.Bag)); err != nil {
			fileSpan.Point("cache", "write failed: "+err.Error())
		}
	}
}

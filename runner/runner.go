// Package runner executes planned OpenSCAD invocations with a bounded
// number of simultaneous external processes.
//
// Invocations are submitted in planned order; results are collected in
// completion order. A failing invocation never aborts its siblings: its
// captured combined output (including the tool's own diagnostics) is the
// result. There are no retries and no timeouts; a hung external process
// holds its pool slot until it exits.
package runner

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultMaxConcurrent is the admission-pool size used when the caller
// does not configure one.
const DefaultMaxConcurrent = 2

// ExecFunc runs one invocation and returns its combined stdout/stderr.
// A non-nil error means the tool exited non-zero; the output must still
// carry whatever the tool wrote.
type ExecFunc func(ctx context.Context, command string) (string, error)

// Result is the captured outcome of one invocation
type Result struct {
	Command  string
	Output   string
	Err      error
	Duration time.Duration
}

// Failed reports whether the invocation exited non-zero
func (r Result) Failed() bool {
	return r.Err != nil
}

// Runner drives a batch of invocations through the admission pool
type Runner struct {
	maxConcurrent int
	exec          ExecFunc
	limiter       *rate.Limiter
	log           *zap.SugaredLogger
}

// Option configures a Runner
type Option func(*Runner)

// WithExec replaces the external-process executor. Tests use this to
// instrument concurrency and simulate failures.
func WithExec(exec ExecFunc) Option {
	return func(r *Runner) { r.exec = exec }
}

// WithPacing spaces process launches at least d apart. The original
// driver deliberately slowed submissions this way; zero disables pacing.
func WithPacing(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// New creates a Runner with the given admission-pool size. Sizes below
// one fall back to DefaultMaxConcurrent.
func New(maxConcurrent int, log *zap.SugaredLogger, opts ...Option) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}
	r := &Runner{
		maxConcurrent: maxConcurrent,
		exec:          ShellExec,
		log:           log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every invocation and returns one Result per invocation,
// in completion order. It returns once the whole batch has completed.
func (r *Runner) Run(ctx context.Context, commands []string) []Result {
	if len(commands) == 0 {
		return nil
	}

	r.log.Infow("Starting render batch",
		"invocations", len(commands),
		"max_concurrent", r.maxConcurrent)

	// Counting semaphore: acquired before spawning, released
	// unconditionally on completion so no permit ever leaks.
	slots := make(chan struct{}, r.maxConcurrent)
	results := make(chan Result, len(commands))

	var wg sync.WaitGroup
	for _, command := range commands {
		wg.Add(1)
		go func(command string) {
			defer wg.Done()
			slots <- struct{}{}
			defer func() { <-slots }()

			results <- r.runOne(ctx, command)
		}(command)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]Result, 0, len(commands))
	for res := range results {
		collected = append(collected, res)
	}

	r.log.Infow("Render batch complete",
		"invocations", len(collected),
		"failed", countFailed(collected))
	return collected
}

func (r *Runner) runOne(ctx context.Context, command string) Result {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return Result{Command: command, Err: err}
		}
	}

	r.log.Debugf("Running %s", command)
	start := time.Now()
	output, err := r.exec(ctx, command)
	elapsed := time.Since(start)

	if err != nil {
		// Partial-failure tolerance: keep the diagnostic text as the
		// result and let the rest of the batch continue.
		r.log.Errorw("Invocation failed",
			"command", command,
			"error", err,
			"output", output)
	} else {
		r.log.Debugw("Invocation complete",
			"command", command,
			"duration", elapsed)
	}

	return Result{
		Command:  command,
		Output:   output,
		Err:      err,
		Duration: elapsed,
	}
}

// ShellExec is the default executor: the invocation string runs through
// the shell (the serializer's quoting contract assumes shell
// interpolation) with stdout and stderr captured together.
func ShellExec(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func countFailed(results []Result) int {
	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	return failed
}

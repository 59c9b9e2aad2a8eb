// Package tool runs the external tt template tool.
package tool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	ierr "github.com/mark3labs/templatetouch/internal/errors"
	"github.com/mark3labs/templatetouch/internal/logger"
	"github.com/mark3labs/templatetouch/internal/platform"
)

// Exec is the Client that spawns the tt binary.
type Exec struct {
	Path        string            // binary name or path, default "tt"
	Dir         string            // working directory for tt, default current
	Timeout     time.Duration     // per-invocation deadline, default 30s
	HeaderLines int               // lines dropped from `tt -z` output; zero drops none, NewExec sets 2
	Platform    platform.Platform // line ending of tt's output
	Convention  Convention
}

// NewExec returns an Exec with defaults for the running OS.
func NewExec(path string) *Exec {
	return &Exec{
		Path:        path,
		Timeout:     DefaultTimeout,
		HeaderLines: DefaultHeaderLines,
		Platform:    platform.Current(),
		Convention:  ConventionSuffix,
	}
}

// CreateFile runs tt with the force-create flag for path and template.
func (e *Exec) CreateFile(ctx context.Context, template, path string, opts CreateOptions) (Output, error) {
	args := CreateArgs(e.Convention, template, path, opts)
	out, err := e.run(ctx, "create file", args)
	if err != nil {
		return out, err
	}
	logger.Info("tt created %s from %s", path, template)
	return out, nil
}

// ListTemplates runs `tt -z` and returns the lines after the header.
func (e *Exec) ListTemplates(ctx context.Context) ([]string, error) {
	out, err := e.run(ctx, "list templates", []string{"-z"})
	if err != nil {
		return nil, err
	}
	lines, err := ParseTemplateList(out.Stdout, e.Platform, e.HeaderLines)
	if err != nil {
		var toolErr *ierr.Error
		if errors.As(err, &toolErr) {
			toolErr.Path = e.binary()
			toolErr.Stderr = out.Stderr
		}
		return nil, err
	}
	logger.Debug("tt listed %d lines after header", len(lines))
	return lines, nil
}

func (e *Exec) binary() string {
	if e.Path == "" {
		return DefaultPath
	}
	return e.Path
}

// run executes tt with args under the configured timeout.
// Cancellation of ctx is returned unchanged; everything else is classified.
func (e *Exec) run(ctx context.Context, op string, args []string) (Output, error) {
	bin := e.binary()
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Debug("Executing %s %s", bin, strings.Join(args, " "))

	cmd := exec.CommandContext(execCtx, bin, args...)
	cmd.Dir = e.Dir
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	out := Output{
		Args:     args,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if ctx.Err() != nil {
		return out, ctx.Err()
	}

	if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
		logger.Warn("%s %s timed out after %s", bin, strings.Join(args, " "), timeout)
		return out, ierr.New(ierr.Timeout, op, bin,
			fmt.Errorf("no result after %s: %w", timeout, context.DeadlineExceeded))
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Warn("%s exited with code %d", bin, exitErr.ExitCode())
			return out, ierr.NewToolFailure(op, bin, exitErr.ExitCode(), out.Stderr, nil)
		}
		logger.Error("Failed to launch %s: %v", bin, err)
		return out, ierr.New(ierr.ExternalToolUnavailable, op, bin, err)
	}

	if out.Stderr != "" {
		logger.Debug("%s stderr: %s", bin, out.Stderr)
	}
	return out, nil
}

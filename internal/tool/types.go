package tool

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultPath is the tt binary looked up on PATH when none is configured.
const DefaultPath = "tt"

// DefaultTimeout bounds every tt invocation.
const DefaultTimeout = 30 * time.Second

// DefaultHeaderLines is the number of banner lines tt prints before the
// template list in `tt -z` output.
const DefaultHeaderLines = 2

// Client is the contract with the external tt tool.
// Implementations must be safe to replace with test doubles that never spawn
// a process.
type Client interface {
	// CreateFile asks tt to materialize a file at path from template.
	CreateFile(ctx context.Context, template, path string, opts CreateOptions) (Output, error)

	// ListTemplates returns the lines tt prints after its header, in tt's
	// order. Lines are not cleaned: empty entries are kept.
	ListTemplates(ctx context.Context) ([]string, error)
}

// CreateOptions maps to tt's optional creation flags.
type CreateOptions struct {
	Overwrite      bool // -o: replace an existing file
	Verbose        bool // -v: verbose tt output
	NamesOnly      bool // -n: print output file names without writing
	Matching       bool // -m: also create the matching header/source file
	PerPlatform    bool // -p: one file per platform list item
	PerEnumeration bool // -e: one file per enumeration list item
	PerLanguage    bool // -l: one file per language list item
	ToScreen       bool // -d: print generated content instead of writing
}

func (o CreateOptions) flags() []string {
	var flags []string
	for _, f := range []struct {
		set  bool
		flag string
	}{
		{o.Overwrite, "-o"},
		{o.Verbose, "-v"},
		{o.NamesOnly, "-n"},
		{o.Matching, "-m"},
		{o.PerPlatform, "-p"},
		{o.PerEnumeration, "-e"},
		{o.PerLanguage, "-l"},
		{o.ToScreen, "-d"},
	} {
		if f.set {
			flags = append(flags, f.flag)
		}
	}
	return flags
}

// Output is what a tt run printed.
type Output struct {
	Args     []string
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Convention selects how the template and the target path reach tt.
type Convention string

const (
	// ConventionSuffix appends the template identifier to the target path and
	// passes the result as `tt -f <path><template>`.
	ConventionSuffix Convention = "suffix"
	// ConventionExplicit passes both separately: `tt -f <path> -t <template>`.
	ConventionExplicit Convention = "explicit"
)

// ParseConvention parses a convention name. Empty means ConventionSuffix.
func ParseConvention(s string) (Convention, error) {
	switch Convention(strings.ToLower(strings.TrimSpace(s))) {
	case "", ConventionSuffix:
		return ConventionSuffix, nil
	case ConventionExplicit:
		return ConventionExplicit, nil
	default:
		return "", fmt.Errorf("invalid calling convention %q (use %q or %q)", s, ConventionSuffix, ConventionExplicit)
	}
}

// CreateArgs builds the tt argument list for creating path from template.
func CreateArgs(conv Convention, template, path string, opts CreateOptions) []string {
	var args []string
	if conv == ConventionExplicit {
		args = []string{"-f", path, "-t", template}
	} else {
		args = []string{"-f", path + template}
	}
	return append(args, opts.flags()...)
}

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mark3labs/templatetouch/internal/menu"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that tt and the editor plugin files are in place",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	menuSync, err := newSynchronizer(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	check := func(ok bool, format string, a ...any) {
		mark := "✓"
		if !ok {
			mark = "✗"
			failed++
		}
		fmt.Fprintf(out, "%s %s\n", mark, fmt.Sprintf(format, a...))
	}

	ttPath, err := exec.LookPath(cfg.ToolPath)
	check(err == nil, "tt binary: %s", orReason(ttPath, err))

	info, err := os.Stat(menuSync.Dir)
	check(err == nil && info.IsDir(), "plugin directory: %s", menuSync.Dir)

	base, err := os.ReadFile(menuSync.BasePath())
	check(err == nil, "base menu: %s", orReason(menuSync.BasePath(), err))
	if err == nil {
		check(strings.Contains(string(base), menu.Sentinel), "base menu contains %s", menu.Sentinel)
	}

	if ttPath != "" {
		templates, err := menuSync.Templates(cmd.Context())
		check(err == nil, "tt -z: %s", orReason(fmt.Sprintf("%d templates", len(templates)), err))
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Fprintln(out, "\nAll checks passed.")
	return nil
}

func orReason(value string, err error) string {
	if err != nil {
		return firstLine(err.Error())
	}
	return value
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

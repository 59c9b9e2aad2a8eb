package main

import (
	"fmt"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"
)

var refreshFlags struct {
	dryRun bool
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Regenerate the side-bar menu from tt's template list",
	Long: `Regenerate the side-bar menu from tt's template list.

Runs "tt -z", substitutes one menu entry per template for the
INSERT_INSTALLED_TEMPLATES marker in the base menu, and overwrites the menu
file. With --dry-run the new menu is compared to the current one and the
difference is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshFlags.dryRun, "dry-run", false, "Print a diff instead of writing the menu file")
}

func runRefresh(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	menuSync, err := newSynchronizer(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if refreshFlags.dryRun {
		res, err := menuSync.Preview(cmd.Context())
		if err != nil {
			return err
		}
		diff := udiff.Unified(res.MenuPath, res.MenuPath+" (new)", res.Previous, res.Document)
		if diff == "" {
			fmt.Fprintf(out, "%s is up to date (%d templates)\n", res.MenuPath, len(res.Templates))
			return nil
		}
		fmt.Fprint(out, diff)
		return nil
	}

	res, err := menuSync.Refresh(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d templates to %s\n", len(res.Templates), res.MenuPath)
	return nil
}

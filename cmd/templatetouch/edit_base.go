package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/editor"
	"github.com/spf13/cobra"
)

var editBaseCmd = &cobra.Command{
	Use:   "edit-base",
	Short: "Open the base menu in $EDITOR, then refresh",
	Args:  cobra.NoArgs,
	RunE:  runEditBase,
}

func runEditBase(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	menuSync, err := newSynchronizer(cfg)
	if err != nil {
		return err
	}

	c, err := editor.Command("templatetouch", menuSync.BasePath())
	if err != nil {
		return fmt.Errorf("failed to prepare editor: %w", err)
	}
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	res, err := menuSync.Refresh(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d templates to %s\n", len(res.Templates), res.MenuPath)
	return nil
}

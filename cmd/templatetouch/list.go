package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates tt reports",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	menuSync, err := newSynchronizer(cfg)
	if err != nil {
		return err
	}

	templates, err := menuSync.Templates(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(templates) == 0 {
		fmt.Fprintln(out, "No templates found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CAPTION\tTEMPLATE")
	for _, t := range templates {
		fmt.Fprintf(w, "%s\t%s\n", t.Caption, t.ID)
	}
	return w.Flush()
}

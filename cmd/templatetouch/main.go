package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/templatetouch/internal/logger"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "templatetouch",
	Short: "Create files from tt templates and keep the editor side bar in sync",
	Long: `templatetouch connects a text editor to the tt template tool.

It creates new files from tt templates and regenerates the editor's side-bar
context menu from the list of templates tt knows about. All template handling
is done by tt; templatetouch only runs it and writes the menu file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(editBaseCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(setupCmd)
}

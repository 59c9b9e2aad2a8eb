package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/templatetouch/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project   bool
	force     bool
	pluginDir string
	toolPath  string
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a templatetouch configuration file",
	Long: `Create a templatetouch configuration file with sensible defaults.

By default, creates a global config at ~/.config/templatetouch/templatetouch.yml.
Use --project to create a project-local config in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	setupCmd.Flags().StringVar(&setupFlags.pluginDir, "plugin-dir", "", "Editor plugin directory (default: the editor's package directory)")
	setupCmd.Flags().StringVar(&setupFlags.toolPath, "tool", "", "Path to the tt binary (default: tt on PATH)")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := config.Defaults()
	if setupFlags.pluginDir != "" {
		cfg.PluginDir = setupFlags.pluginDir
	}
	if setupFlags.toolPath != "" {
		cfg.ToolPath = setupFlags.toolPath
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n\n", targetPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'templatetouch doctor' to check your installation.")
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

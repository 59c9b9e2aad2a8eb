package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/templatetouch/internal/creator"
	"github.com/mark3labs/templatetouch/internal/prompt"
	"github.com/mark3labs/templatetouch/internal/tool"
	"github.com/spf13/cobra"
)

var createFlags struct {
	template  string
	dirs      []string
	overwrite bool
	verbose   bool
	namesOnly bool
	matching  bool
	platforms bool
	enums     bool
	languages bool
	toScreen  bool
}

var createCmd = &cobra.Command{
	Use:   "create [file-name]",
	Short: "Create a file from a tt template",
	Long: `Create a file from a tt template in the given directory.

This is the side-bar "create from template" command. When the file name is
omitted it is asked for interactively. Whatever tt prints is shown as-is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createFlags.template, "template", "t", "", "Template identifier as listed by tt (required)")
	createCmd.Flags().StringArrayVarP(&createFlags.dirs, "dir", "d", nil, "Target directory, may be repeated; the first one is used (default: current directory)")
	createCmd.Flags().BoolVarP(&createFlags.overwrite, "overwrite", "o", false, "Let tt overwrite an existing file")
	createCmd.Flags().BoolVarP(&createFlags.verbose, "verbose", "v", false, "Ask tt for verbose output")
	createCmd.Flags().BoolVarP(&createFlags.namesOnly, "names-only", "n", false, "Print the names tt would create without writing files")
	createCmd.Flags().BoolVarP(&createFlags.matching, "matching", "m", false, "Also create the matching header or source file (C family)")
	createCmd.Flags().BoolVarP(&createFlags.platforms, "per-platform", "p", false, "Create one file per item on tt's platform list")
	createCmd.Flags().BoolVarP(&createFlags.enums, "per-enumeration", "e", false, "Create one file per item on tt's enumeration list")
	createCmd.Flags().BoolVarP(&createFlags.languages, "per-language", "l", false, "Create one file per item on tt's language list")
	createCmd.Flags().BoolVar(&createFlags.toScreen, "to-screen", false, "Print the generated content instead of writing files")
	_ = createCmd.MarkFlagRequired("template")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dirs := createFlags.dirs
	if len(dirs) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		dirs = []string{wd}
	}

	var fileName string
	if len(args) == 1 {
		fileName = args[0]
	} else {
		fileName, err = prompt.FileName("File name to create:")
		if err != nil {
			return err
		}
	}

	client, err := cfg.NewClient()
	if err != nil {
		return err
	}

	c := creator.New(client, cfg.ResolvedPlatform())
	out, err := c.Create(cmd.Context(), creator.Request{
		Dirs:     dirs,
		Template: createFlags.template,
		FileName: fileName,
		Options: tool.CreateOptions{
			Overwrite:      createFlags.overwrite,
			Verbose:        createFlags.verbose,
			NamesOnly:      createFlags.namesOnly,
			Matching:       createFlags.matching,
			PerPlatform:    createFlags.platforms,
			PerEnumeration: createFlags.enums,
			PerLanguage:    createFlags.languages,
			ToScreen:       createFlags.toScreen,
		},
	})
	if out.Stdout != "" {
		fmt.Fprint(cmd.OutOrStdout(), out.Stdout)
	}
	return err
}

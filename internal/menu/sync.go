package menu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ierr "github.com/mark3labs/templatetouch/internal/errors"
	"github.com/mark3labs/templatetouch/internal/logger"
	"github.com/mark3labs/templatetouch/internal/tool"
	"github.com/spf13/afero"
)

// Default file names inside the plugin directory.
const (
	DefaultBaseName = "side_bar_base.json"
	DefaultMenuName = "Side Bar.sublime-menu"
)

// Synchronizer regenerates the menu file from tt's template list.
// It holds no state between calls: every refresh re-reads the base file and
// re-queries tt.
type Synchronizer struct {
	Client            tool.Client
	FS                afero.Fs
	Dir               string // plugin directory holding both files
	BaseName          string
	MenuName          string
	Prefix            string // stripped from identifiers; empty strips nothing
	TrailingSeparator bool
}

// Result describes one synchronization.
type Result struct {
	Templates []Template
	Document  string // composed menu
	Previous  string // menu file contents before the refresh, set by Preview
	MenuPath  string
}

// BasePath returns the full path of the base menu document.
func (s *Synchronizer) BasePath() string {
	return filepath.Join(s.Dir, nonEmpty(s.BaseName, DefaultBaseName))
}

// MenuPath returns the full path of the generated menu file.
func (s *Synchronizer) MenuPath() string {
	return filepath.Join(s.Dir, nonEmpty(s.MenuName, DefaultMenuName))
}

// Templates fetches and cleans the template list.
func (s *Synchronizer) Templates(ctx context.Context) ([]Template, error) {
	lines, err := s.Client.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	return Clean(lines, s.Prefix), nil
}

// Refresh fetches templates, composes the menu and overwrites the menu file.
func (s *Synchronizer) Refresh(ctx context.Context) (*Result, error) {
	res, err := s.compose(ctx)
	if err != nil {
		return nil, err
	}

	if err := afero.WriteFile(s.fs(), res.MenuPath, []byte(res.Document), 0644); err != nil {
		return nil, ierr.New(ierr.FileSystemError, "write menu", res.MenuPath, err)
	}

	logger.Info("Wrote %d menu entries to %s", len(res.Templates), res.MenuPath)
	return res, nil
}

// Preview composes the menu without writing it and loads the current menu
// file into Result.Previous. A missing menu file previews as empty.
func (s *Synchronizer) Preview(ctx context.Context) (*Result, error) {
	res, err := s.compose(ctx)
	if err != nil {
		return nil, err
	}

	prev, err := afero.ReadFile(s.fs(), res.MenuPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, ierr.New(ierr.FileSystemError, "read menu", res.MenuPath, err)
	}
	res.Previous = string(prev)
	return res, nil
}

func (s *Synchronizer) compose(ctx context.Context) (*Result, error) {
	templates, err := s.Templates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching templates: %w", err)
	}
	logger.Debug("Cleaned template list: %d entries", len(templates))

	rendered, err := Render(templates, RenderOptions{TrailingSeparator: s.TrailingSeparator})
	if err != nil {
		return nil, err
	}

	basePath := s.BasePath()
	base, err := afero.ReadFile(s.fs(), basePath)
	if err != nil {
		return nil, ierr.New(ierr.FileSystemError, "read base menu", basePath, err)
	}

	doc, err := Compose(string(base), rendered)
	if err != nil {
		return nil, withPath(err, basePath)
	}
	if err := Validate(doc); err != nil {
		return nil, withPath(err, basePath)
	}

	return &Result{
		Templates: templates,
		Document:  doc,
		MenuPath:  s.MenuPath(),
	}, nil
}

func (s *Synchronizer) fs() afero.Fs {
	if s.FS == nil {
		return afero.NewOsFs()
	}
	return s.FS
}

func withPath(err error, path string) error {
	if e, ok := err.(*ierr.Error); ok {
		e.Path = path
	}
	return err
}

func nonEmpty(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

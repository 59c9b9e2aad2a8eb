// Package creator implements the "create from template" editor command.
package creator

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/templatetouch/internal/logger"
	"github.com/mark3labs/templatetouch/internal/platform"
	"github.com/mark3labs/templatetouch/internal/tool"
)

// Request mirrors the arguments the editor passes to create_from_template,
// plus the file name typed by the user.
type Request struct {
	Dirs     []string // directories selected in the side bar; the first one is used
	Template string
	FileName string
	Options  tool.CreateOptions
}

// Creator materializes files through tt.
type Creator struct {
	Client   tool.Client
	Platform platform.Platform
}

// New returns a Creator for the given client and platform.
func New(client tool.Client, p platform.Platform) *Creator {
	return &Creator{Client: client, Platform: p}
}

// Create validates req, builds the target path from its first directory and
// file name, and creates the file.
func (c *Creator) Create(ctx context.Context, req Request) (tool.Output, error) {
	if len(req.Dirs) == 0 || strings.TrimSpace(req.Dirs[0]) == "" {
		return tool.Output{}, fmt.Errorf("no target directory given")
	}
	if req.Template == "" {
		return tool.Output{}, fmt.Errorf("no template given")
	}
	name := strings.TrimSpace(req.FileName)
	if name == "" {
		return tool.Output{}, fmt.Errorf("file name must not be empty")
	}
	if len(req.Dirs) > 1 {
		logger.Debug("Multiple directories selected, using %s", req.Dirs[0])
	}

	target := c.Platform.Join(req.Dirs[0], name)
	return c.CreateFromTemplate(ctx, req.Template, target, req.Options)
}

// CreateFromTemplate asks tt to create targetPath from templateID. tt's
// stdout is returned so the caller can show it to the user.
func (c *Creator) CreateFromTemplate(ctx context.Context, templateID, targetPath string, opts tool.CreateOptions) (tool.Output, error) {
	logger.Debug("Creating %s from template %s", targetPath, templateID)

	out, err := c.Client.CreateFile(ctx, templateID, targetPath, opts)
	if err != nil {
		return out, fmt.Errorf("creating %s from template %s: %w", targetPath, templateID, err)
	}

	if msg := strings.TrimSpace(out.Stdout); msg != "" {
		logger.Info("tt: %s", msg)
	}
	return out, nil
}

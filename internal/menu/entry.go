// Package menu turns tt's template list into the editor's side-bar menu.
package menu

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultPrefix is the fixed prefix tt puts in front of every template name.
const DefaultPrefix = "template"

// CreateCommand is the editor command each menu entry invokes.
const CreateCommand = "create_from_template"

// Template is one template reported by tt.
type Template struct {
	ID      string // identifier exactly as printed by tt
	Caption string // ID with the prefix stripped, shown in the menu
}

// Entry is a single side-bar menu item. Field order is the serialized order.
type Entry struct {
	Caption string    `json:"caption"`
	Command string    `json:"command"`
	Args    EntryArgs `json:"args"`
}

// EntryArgs are the arguments passed to CreateCommand.
// Dirs is filled in by the editor with the clicked directory.
type EntryArgs struct {
	Dirs     []string `json:"dirs"`
	Template string   `json:"template"`
}

// NewEntry builds the menu entry for t.
func NewEntry(t Template) Entry {
	return Entry{
		Caption: t.Caption,
		Command: CreateCommand,
		Args: EntryArgs{
			Dirs:     []string{},
			Template: t.ID,
		},
	}
}

// Clean drops empty lines and strips prefix from each remaining identifier.
// The prefix is removed at most once; identifiers without it keep their full
// text as caption, and a caption left empty falls back to the identifier.
func Clean(lines []string, prefix string) []Template {
	templates := make([]Template, 0, len(lines))
	for _, line := range lines {
		id := strings.TrimRight(line, "\r")
		if id == "" {
			continue
		}
		caption := strings.TrimPrefix(id, prefix)
		if caption == "" {
			caption = id
		}
		templates = append(templates, Template{ID: id, Caption: caption})
	}
	return templates
}

// RenderOptions controls entry serialization.
type RenderOptions struct {
	// TrailingSeparator appends ", " after the last entry, matching menus
	// generated by the first editor plugin. The editor's JSON reader accepts
	// it; strict JSON readers do not.
	TrailingSeparator bool
}

// Separator joins serialized entries.
const Separator = ", "

// Render serializes one Entry per template, in order, joined by Separator.
// An empty list renders as the empty string.
func Render(templates []Template, opts RenderOptions) (string, error) {
	parts := make([]string, 0, len(templates))
	for _, t := range templates {
		data, err := json.Marshal(NewEntry(t))
		if err != nil {
			return "", fmt.Errorf("marshaling menu entry %q: %w", t.ID, err)
		}
		parts = append(parts, string(data))
	}

	rendered := strings.Join(parts, Separator)
	if opts.TrailingSeparator && len(parts) > 0 {
		rendered += Separator
	}
	return rendered, nil
}

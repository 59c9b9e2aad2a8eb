package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []Template
	}{
		{
			name:  "drops empty lines and strips prefix",
			lines: []string{"templateFoo", "", "templateBar", ""},
			want: []Template{
				{ID: "templateFoo", Caption: "Foo"},
				{ID: "templateBar", Caption: "Bar"},
			},
		},
		{
			name:  "prefix stripped once",
			lines: []string{"templatetemplateX"},
			want:  []Template{{ID: "templatetemplateX", Caption: "templateX"}},
		},
		{
			name:  "identifier without prefix kept",
			lines: []string{"readme.md"},
			want:  []Template{{ID: "readme.md", Caption: "readme.md"}},
		},
		{
			name:  "bare prefix falls back to identifier",
			lines: []string{"template"},
			want:  []Template{{ID: "template", Caption: "template"}},
		},
		{
			name:  "stray carriage return removed",
			lines: []string{"template.cpp\r", "\r"},
			want:  []Template{{ID: "template.cpp", Caption: ".cpp"}},
		},
		{
			name:  "nothing left",
			lines: []string{"", ""},
			want:  []Template{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.lines, DefaultPrefix))
		})
	}
}

func TestClean_EntryCountMatchesNonEmptyLines(t *testing.T) {
	inputs := [][]string{
		{},
		{""},
		{"templateA"},
		{"templateA", "", "", "templateB", "templateC", ""},
	}
	for _, lines := range inputs {
		nonEmpty := 0
		for _, l := range lines {
			if l != "" {
				nonEmpty++
			}
		}
		templates := Clean(lines, DefaultPrefix)
		assert.Len(t, templates, nonEmpty)

		rendered, err := Render(templates, RenderOptions{})
		require.NoError(t, err)
		assert.Equal(t, nonEmpty, strings.Count(rendered, `"command":"create_from_template"`))
	}
}

func TestClean_EmptyPrefix(t *testing.T) {
	got := Clean([]string{"templateA"}, "")
	assert.Equal(t, []Template{{ID: "templateA", Caption: "templateA"}}, got)
}

func TestRender(t *testing.T) {
	templates := []Template{
		{ID: "templateA", Caption: "A"},
		{ID: "templateB", Caption: "B"},
	}

	got, err := Render(templates, RenderOptions{})
	require.NoError(t, err)
	want := `{"caption":"A","command":"create_from_template","args":{"dirs":[],"template":"templateA"}}, ` +
		`{"caption":"B","command":"create_from_template","args":{"dirs":[],"template":"templateB"}}`
	assert.Equal(t, want, got)

	trailing, err := Render(templates, RenderOptions{TrailingSeparator: true})
	require.NoError(t, err)
	assert.Equal(t, want+", ", trailing)
}

func TestRender_Empty(t *testing.T) {
	for _, opts := range []RenderOptions{{}, {TrailingSeparator: true}} {
		got, err := Render(nil, opts)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	}
}

func TestRender_EscapesQuotes(t *testing.T) {
	got, err := Render([]Template{{ID: `template"q"`, Caption: `"q"`}}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, got, `"caption":"\"q\""`)
	assert.Contains(t, got, `"template":"template\"q\""`)
}

func TestNewEntry_DirsNeverNull(t *testing.T) {
	e := NewEntry(Template{ID: "templateA", Caption: "A"})
	require.NotNil(t, e.Args.Dirs)
	assert.Empty(t, e.Args.Dirs)
	assert.Equal(t, CreateCommand, e.Command)
}

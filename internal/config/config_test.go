package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/templatetouch/internal/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the global config at a temp dir, moves into an empty
// project dir, and clears every TEMPLATETOUCH_ override.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	for _, key := range keys {
		t.Setenv(EnvPrefix+"_"+strings.ToUpper(key), "")
		require.NoError(t, os.Unsetenv(EnvPrefix+"_"+strings.ToUpper(key)))
	}
	project := filepath.Join(tmpDir, "project")
	require.NoError(t, os.MkdirAll(project, 0755))
	t.Chdir(project)
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, filepath.Join("/custom/config", "templatetouch", "templatetouch.yml"), GlobalPath())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		assert.True(t, filepath.IsAbs(got), "GlobalPath() should be absolute, got %s", got)
		assert.Equal(t, "templatetouch.yml", filepath.Base(got))
	})
}

func TestProjectPath(t *testing.T) {
	assert.Equal(t, "templatetouch.yml", ProjectPath())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.TimeoutDuration())
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	global := GlobalPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(global), 0755))
	require.NoError(t, os.WriteFile(global, []byte("tool_path: /opt/tt\ntimeout: 10\nheader_lines: 3\n"), 0644))
	require.NoError(t, os.WriteFile(ProjectPath(), []byte("timeout: 5\ntrailing_separator: true\n"), 0644))
	t.Setenv("TEMPLATETOUCH_HEADER_LINES", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/tt", cfg.ToolPath, "global value kept")
	assert.Equal(t, 5, cfg.Timeout, "project overrides global")
	assert.True(t, cfg.TrailingSeparator)
	assert.Equal(t, 1, cfg.HeaderLines, "env overrides files")
	assert.Equal(t, "Side Bar.sublime-menu", cfg.MenuFile, "default kept")
}

func TestLoad_InvalidProjectFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(ProjectPath(), []byte("timeout: [unclosed\n"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty tool", func(c *Config) { c.ToolPath = " " }, "tool_path"},
		{"negative header", func(c *Config) { c.HeaderLines = -1 }, "header_lines"},
		{"zero header allowed", func(c *Config) { c.HeaderLines = 0 }, ""},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout"},
		{"bad convention", func(c *Config) { c.Convention = "prefix" }, "convention"},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }, "log level"},
		{"known platform", func(c *Config) { c.Platform = "Windows" }, ""},
		{"darwin platform", func(c *Config) { c.Platform = "darwin" }, ""},
		{"misspelled platform", func(c *Config) { c.Platform = "win" }, "invalid platform"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolvedPluginDir(t *testing.T) {
	cfg := Defaults()
	cfg.PluginDir = "/explicit/dir"
	dir, err := cfg.ResolvedPluginDir()
	require.NoError(t, err)
	assert.Equal(t, "/explicit/dir", dir)

	cfg.PluginDir = ""
	cfg.Platform = "linux"
	t.Setenv("HOME", "/home/someone")
	dir, err = cfg.ResolvedPluginDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/someone", ".config", "sublime-text", "Packages", "template_touch"), dir)
}

func TestNewClient(t *testing.T) {
	cfg := Defaults()
	cfg.ToolPath = "/usr/local/bin/tt"
	cfg.Timeout = 7
	cfg.HeaderLines = 1
	cfg.Platform = "windows"
	cfg.Convention = "explicit"

	client, err := cfg.NewClient()
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/tt", client.Path)
	assert.Equal(t, 7*time.Second, client.Timeout)
	assert.Equal(t, 1, client.HeaderLines)
	assert.Equal(t, "\r\n", client.Platform.LineEnding)
	assert.Equal(t, tool.ConventionExplicit, client.Convention)
}

func TestExists(t *testing.T) {
	isolate(t)
	assert.False(t, Exists())

	require.NoError(t, os.WriteFile(ProjectPath(), []byte("timeout: 3\n"), 0644))
	assert.True(t, Exists())
}

func TestWriteGlobal(t *testing.T) {
	isolate(t)

	cfg := Defaults()
	cfg.ToolPath = "/opt/tt"
	cfg.TrailingSeparator = true
	require.NoError(t, WriteGlobal(cfg))

	data, err := os.ReadFile(GlobalPath())
	require.NoError(t, err)
	content := string(data)
	for _, field := range []string{
		"tool_path: /opt/tt",
		"base_menu: side_bar_base.json",
		"menu_file: Side Bar.sublime-menu",
		"template_prefix: template",
		"header_lines: 2",
		"timeout: 30",
		"convention: suffix",
		"trailing_separator: true",
	} {
		assert.Contains(t, content, field)
	}
}

func TestWriteProjectRoundTrip(t *testing.T) {
	isolate(t)

	cfg := Defaults()
	cfg.PluginDir = "/plugins/template_touch"
	cfg.HeaderLines = 0
	require.NoError(t, WriteProject(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

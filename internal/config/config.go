// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/templatetouch/internal/logger"
	"github.com/mark3labs/templatetouch/internal/platform"
	"github.com/mark3labs/templatetouch/internal/tool"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name used in both locations.
const FileName = "templatetouch.yml"

// EnvPrefix prefixes every environment override, e.g. TEMPLATETOUCH_TOOL_PATH.
const EnvPrefix = "TEMPLATETOUCH"

// Config holds all configuration values for templatetouch.
type Config struct {
	ToolPath          string `mapstructure:"tool_path" yaml:"tool_path"`
	PluginDir         string `mapstructure:"plugin_dir" yaml:"plugin_dir"`
	BaseMenu          string `mapstructure:"base_menu" yaml:"base_menu"`
	MenuFile          string `mapstructure:"menu_file" yaml:"menu_file"`
	TemplatePrefix    string `mapstructure:"template_prefix" yaml:"template_prefix"`
	HeaderLines       int    `mapstructure:"header_lines" yaml:"header_lines"`
	Timeout           int    `mapstructure:"timeout" yaml:"timeout"` // seconds
	Platform          string `mapstructure:"platform" yaml:"platform"`
	Convention        string `mapstructure:"convention" yaml:"convention"`
	TrailingSeparator bool   `mapstructure:"trailing_separator" yaml:"trailing_separator"`
	LogLevel          string `mapstructure:"log_level" yaml:"log_level"`
	LogFile           string `mapstructure:"log_file" yaml:"log_file"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		ToolPath:       tool.DefaultPath,
		BaseMenu:       "side_bar_base.json",
		MenuFile:       "Side Bar.sublime-menu",
		TemplatePrefix: "template",
		HeaderLines:    tool.DefaultHeaderLines,
		Timeout:        int(tool.DefaultTimeout / time.Second),
		Convention:     string(tool.ConventionSuffix),
		LogLevel:       "info",
	}
}

// keys lists every config key; each is bound to TEMPLATETOUCH_<KEY>.
var keys = []string{
	"tool_path",
	"plugin_dir",
	"base_menu",
	"menu_file",
	"template_prefix",
	"header_lines",
	"timeout",
	"platform",
	"convention",
	"trailing_separator",
	"log_level",
	"log_file",
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	d := Defaults()
	v.SetDefault("tool_path", d.ToolPath)
	v.SetDefault("plugin_dir", d.PluginDir)
	v.SetDefault("base_menu", d.BaseMenu)
	v.SetDefault("menu_file", d.MenuFile)
	v.SetDefault("template_prefix", d.TemplatePrefix)
	v.SetDefault("header_lines", d.HeaderLines)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("platform", d.Platform)
	v.SetDefault("convention", d.Convention)
	v.SetDefault("trailing_separator", d.TrailingSeparator)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
		logger.Debug("Loaded global config from %s", globalPath)
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
		logger.Debug("Merged project config from %s", projectPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ToolPath) == "" {
		return fmt.Errorf("tool_path must not be empty")
	}
	if c.HeaderLines < 0 {
		return fmt.Errorf("header_lines must be >= 0, got %d", c.HeaderLines)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 seconds, got %d", c.Timeout)
	}
	if _, err := tool.ParseConvention(c.Convention); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.Platform)) {
	case "", "windows", "linux", "darwin":
	default:
		return fmt.Errorf("invalid platform %q (use windows, linux or darwin, or leave empty for the running OS)", c.Platform)
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// TimeoutDuration returns the tt timeout.
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ResolvedPlatform returns the configured platform, or the running OS.
func (c *Config) ResolvedPlatform() platform.Platform {
	return platform.For(c.Platform)
}

// ResolvedPluginDir returns plugin_dir, or the editor's default package
// directory for the configured platform.
func (c *Config) ResolvedPluginDir() (string, error) {
	if c.PluginDir != "" {
		return c.PluginDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return platform.DefaultPluginDir(c.ResolvedPlatform().Name, home, os.Getenv("APPDATA")), nil
}

// NewClient builds the tt client described by the config.
func (c *Config) NewClient() (*tool.Exec, error) {
	conv, err := tool.ParseConvention(c.Convention)
	if err != nil {
		return nil, err
	}
	e := tool.NewExec(c.ToolPath)
	e.Timeout = c.TimeoutDuration()
	e.HeaderLines = c.HeaderLines
	e.Platform = c.ResolvedPlatform()
	e.Convention = conv
	return e, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/templatetouch/templatetouch.yml or
// $XDG_CONFIG_HOME/templatetouch/templatetouch.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "templatetouch", FileName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "templatetouch", FileName)
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return FileName
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

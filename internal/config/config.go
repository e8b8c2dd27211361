// Package config loads process configuration for type-closure.
//
// Sources, lowest precedence first: defaults, the YAML config file,
// .env files, the process environment. Command-line flags are applied on
// top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"type-closure/internal/analyze"
	"type-closure/internal/closure"
	"type-closure/internal/report"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "type-closure.yaml"

// Introspector backends.
const (
	BackendGo    = "go"
	BackendTable = "table"
)

// Environment variables.
const (
	EnvIgnoreFramework     = "TYPE_CLOSURE_IGNORE_FRAMEWORK"
	EnvRecursive           = "TYPE_CLOSURE_RECURSIVE"
	EnvMaxDepth            = "TYPE_CLOSURE_MAX_DEPTH"
	EnvBackend             = "TYPE_CLOSURE_BACKEND"
	EnvPackages            = "TYPE_CLOSURE_PACKAGES"
	EnvDir                 = "TYPE_CLOSURE_DIR"
	EnvMetadataFile        = "TYPE_CLOSURE_METADATA"
	EnvFrameworkNamespaces = "TYPE_CLOSURE_FRAMEWORK_NAMESPACES"
	EnvOutputDir           = "TYPE_CLOSURE_OUTPUT_DIR"
	EnvOutputFile          = "TYPE_CLOSURE_OUTPUT_FILE"
)

// DefaultTableNamespaces are the framework namespaces of the table backend
// when none are configured.
var DefaultTableNamespaces = []string{"java", "sun"}

// Config holds the process configuration.
type Config struct {
	IgnoreFramework     bool     `yaml:"ignore_framework"`
	Recursive           bool     `yaml:"recursive"`
	MaxDepth            int      `yaml:"max_depth,omitempty"`
	Backend             string   `yaml:"backend"`
	Packages            []string `yaml:"packages,omitempty"`
	Dir                 string   `yaml:"dir,omitempty"`
	MetadataFile        string   `yaml:"metadata_file,omitempty"`
	FrameworkNamespaces []string `yaml:"framework_namespaces,omitempty"`
	OutputDir           string   `yaml:"output_dir,omitempty"`
	OutputFile          string   `yaml:"output_file,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Recursive: true,
		Backend:   BackendGo,
		OutputDir: ".",
	}
}

// Load reads the config file at path over the defaults, then applies .env
// files and the environment. A missing file at DefaultPath is not an error.
// With no envFiles, ".env" is read if present.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dotenv, err := readEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	return cfg, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		env, err := godotenv.Read()
		if err != nil {
			// No .env file
			return map[string]string{}, nil
		}
		return env, nil
	}

	env, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to read env files: %w", err)
	}

	return env, nil
}

// applyEnv overrides fields from environment variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	boolVar := func(key string, dst *bool) {
		if raw, ok := lookup(key); ok && strings.TrimSpace(raw) != "" {
			v, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = v
		}
	}

	stringVar := func(key string, dst *string) {
		if raw, ok := lookup(key); ok && strings.TrimSpace(raw) != "" {
			*dst = strings.TrimSpace(raw)
		}
	}

	listVar := func(key string, dst *[]string) {
		if raw, ok := lookup(key); ok && strings.TrimSpace(raw) != "" {
			*dst = SplitList(raw)
		}
	}

	boolVar(EnvIgnoreFramework, &c.IgnoreFramework)
	boolVar(EnvRecursive, &c.Recursive)

	if raw, ok := lookup(EnvMaxDepth); ok && strings.TrimSpace(raw) != "" {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMaxDepth, err))
		} else {
			c.MaxDepth = v
		}
	}

	stringVar(EnvBackend, &c.Backend)
	listVar(EnvPackages, &c.Packages)
	stringVar(EnvDir, &c.Dir)
	stringVar(EnvMetadataFile, &c.MetadataFile)
	listVar(EnvFrameworkNamespaces, &c.FrameworkNamespaces)
	stringVar(EnvOutputDir, &c.OutputDir)
	stringVar(EnvOutputFile, &c.OutputFile)

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %w", errors.Join(errs...))
	}

	return nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGo:
	case BackendTable:
		if c.MetadataFile == "" {
			return fmt.Errorf("backend %q requires a metadata file", BackendTable)
		}
	default:
		return fmt.Errorf("unknown backend %q (valid: %s, %s)", c.Backend, BackendGo, BackendTable)
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}

	return nil
}

// Traversal returns the traversal policies selected by the configuration.
func (c *Config) Traversal() closure.TraversalConfig {
	return closure.TraversalConfig{
		IgnoreFramework: c.IgnoreFramework,
		Recursive:       c.Recursive,
		MaxDepth:        c.MaxDepth,
	}
}

// Namespaces returns the configured framework namespaces, or the backend's
// defaults when none are configured.
func (c *Config) Namespaces() closure.Namespaces {
	if len(c.FrameworkNamespaces) > 0 {
		return closure.Namespaces(c.FrameworkNamespaces)
	}

	if c.Backend == BackendTable {
		return closure.Namespaces(DefaultTableNamespaces)
	}

	return closure.Namespaces(analyze.StdlibNamespaces)
}

// ReportPath returns where the report is written for the current toggles.
func (c *Config) ReportPath() string {
	name := c.OutputFile
	if name == "" {
		name = report.FileName(c.Traversal())
	}

	return filepath.Join(c.OutputDir, name)
}

// SplitList splits a comma-separated list, dropping blank entries.
func SplitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}

	return out
}

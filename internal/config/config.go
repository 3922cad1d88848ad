package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

// Library identifies a client binding style. The set of styles the
// generator actually supports lives in the render registry; config only
// carries the identifier through.
type Library string

const (
	LibraryReactQuery Library = "react-query"
	LibrarySWR        Library = "swr"
	LibraryZustand    Library = "zustand"
	LibraryRedux      Library = "redux"
)

// Libraries lists the built-in binding styles in the order the CLI
// presents them.
var Libraries = []Library{LibraryReactQuery, LibrarySWR, LibraryZustand, LibraryRedux}

// Language selects the emitted source language.
type Language string

const (
	LanguageTypeScript Language = "typescript"
	LanguageJavaScript Language = "javascript"
)

// DefaultConfigFile is picked up from the working directory when no
// --config flag is given.
const DefaultConfigFile = "storegen.yaml"

const defaultOutputDir = "./src/api"

type Config struct {
	Spec      string         `koanf:"spec"`
	OutputDir string         `koanf:"output"`
	Library   Library        `koanf:"library"`
	Language  Language       `koanf:"language"`
	Tags      []string       `koanf:"tags"`
	Strict    bool           `koanf:"strict"`
	Templates TemplateConfig `koanf:"templates"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

// BindCommonFlags binds the flags shared by generate and its per-library
// subcommands.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: storegen.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.StringP("output", "o", "", "Output directory (default: ./src/api)")
	flags.StringP("language", "l", "", "Output language: typescript or javascript")
	flags.StringSlice("tags", nil, "Generate only modules for these tags")
	flags.Bool("strict", false, "Fail on spec validation errors")
	flags.String("templates-dir", "", "Custom templates directory")
	flags.Bool("dry-run", false, "Print output without writing files")
}

func Load(cmd *cobra.Command, library string) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			configFile = DefaultConfigFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Subcommand choice overrides the config file.
	if library != "" {
		cfg.Library = Library(library)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	switch strings.ToLower(string(c.Language)) {
	case "", "ts", "typescript":
		c.Language = LanguageTypeScript
	case "js", "javascript":
		c.Language = LanguageJavaScript
	}
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil && v {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("output"); v != "" {
		m["output"] = v
	}
	if v := getString("language"); v != "" {
		m["language"] = v
	}
	if v := getStringSlice("tags"); len(v) > 0 {
		m["tags"] = v
	}
	if flagChanged("strict") {
		m["strict"] = getBool("strict")
	}
	if v := getString("templates-dir"); v != "" {
		m["templates.dir"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.Library == "" {
		return fmt.Errorf("library is required")
	}

	validLanguages := map[Language]bool{LanguageTypeScript: true, LanguageJavaScript: true}
	if !validLanguages[c.Language] {
		return fmt.Errorf("invalid language: %s (valid: typescript, javascript)", c.Language)
	}

	return nil
}

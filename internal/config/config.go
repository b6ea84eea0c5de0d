// Package config layers the configure-docs settings that are not given as
// required flags: built-in defaults, an optional JSONC config file,
// CONFIGURE_DOCS_* environment variables and bound command-line flags.
//
// Layering is handled by a per-command-tree viper instance. The config
// file may contain comments (JSONC); they are stripped with
// github.com/tidwall/jsonc and the result is checked against an embedded
// JSON Schema before viper sees it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"

	"github.com/midwire/configure-docs/internal/model"
)

// EnvPrefix is prepended to every key to form its environment variable,
// e.g. CONFIGURE_DOCS_ORG.
const EnvPrefix = "CONFIGURE_DOCS"

// Setting keys, shared by the config file, environment and flag bindings.
const (
	KeyHost         = "host"
	KeyOrg          = "org"
	KeyTemplatesDir = "templates_dir"
	KeyLintConfig   = "lint_config"
)

const (
	dirName  = "configure-docs"
	fileName = "config.jsonc"
)

// Settings is the resolved view of the layered configuration.
type Settings struct {
	Host         string
	Org          string
	TemplatesDir string
	LintConfig   string
}

// New returns a viper instance with defaults and environment lookup set up.
// No file is read until Load is called.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyHost, model.DefaultHost)
	v.SetDefault(KeyOrg, model.DefaultOrg)
	v.SetDefault(KeyTemplatesDir, "")
	v.SetDefault(KeyLintConfig, model.DefaultLintConfig)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultPath returns <user config dir>/configure-docs/config.jsonc, or ""
// when the platform has no user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, dirName, fileName)
}

// Load reads the config file into v and returns the path that was used.
//
// An explicit path must exist. With an empty path the default location is
// tried and silently skipped when absent, in which case "" is returned.
func Load(v *viper.Viper, path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file %s: %w", path, err)
	}

	jsonData := jsonc.ToJSON(data)
	if err := Validate(jsonData); err != nil {
		return "", fmt.Errorf("config file %s: %w", path, err)
	}

	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(jsonData)); err != nil {
		return "", fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return path, nil
}

// FromViper snapshots the current settings.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		Host:         v.GetString(KeyHost),
		Org:          v.GetString(KeyOrg),
		TemplatesDir: v.GetString(KeyTemplatesDir),
		LintConfig:   v.GetString(KeyLintConfig),
	}
}

// Apply copies the settings onto opts.
func (s Settings) Apply(opts *model.Options) {
	opts.Host = s.Host
	opts.Org = s.Org
	opts.TemplatesDir = s.TemplatesDir
	opts.LintConfig = s.LintConfig
}

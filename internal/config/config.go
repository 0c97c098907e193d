// Package config resolves the editor's config path and loads its
// top-level YAML config file using gopkg.in/yaml.v3, the same way
// amantus-ai-vibetunnel marshals its own config.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the editor's on-disk configuration file, conventionally
// named "config.yaml" under the resolved Path.
type Config struct {
	WrapStyle   string            `yaml:"wrap_style"`
	MarginLines int               `yaml:"margin_lines"`
	Commands    map[string]string `yaml:"commands"`
}

// ResolvePath returns the directories to search for editor config and
// commands, in priority order: $EDGE_PATH (colon-separated) if set,
// else $HOME/.edge, else "/".
func ResolvePath() []string {
	if v := os.Getenv("EDGE_PATH"); v != "" {
		return strings.Split(v, ":")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return []string{filepath.Join(home, ".edge")}
	}
	return []string{"/"}
}

// Load reads "config.yaml" from the first directory in ResolvePath
// that contains one. It returns a zero-value Config, not an error, if
// none of the directories has a config file.
func Load() (Config, error) {
	for _, dir := range ResolvePath() {
		data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
		if err != nil {
			continue
		}
		var c Config
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, err
		}
		return c, nil
	}
	return Config{}, nil
}

// CommandEnvironmentPath returns the path conventionally holding
// KEY=VALUE environment overrides for the given shell command's first
// token, under the first resolved config directory.
func CommandEnvironmentPath(firstToken string) string {
	dirs := ResolvePath()
	if len(dirs) == 0 {
		return ""
	}
	return filepath.Join(dirs[0], "commands", firstToken, "environment")
}

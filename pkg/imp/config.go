package imp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the project configuration file looked up by FindConfig.
const ConfigFileName = "imp.toml"

// Config represents an imp.toml project configuration file.
type Config struct {
	// Samples selects which built-in samples run by default. Empty means all.
	Samples []string `toml:"samples,omitempty"`

	// Parallel runs samples concurrently.
	Parallel bool `toml:"parallel,omitempty"`

	// Color styles run banners. Defaults to true when unset.
	Color *bool `toml:"color,omitempty"`

	// Debug enables debug logging.
	Debug bool `toml:"debug,omitempty"`

	// ShowTypes reports the type environment after each statement run.
	ShowTypes bool `toml:"show_types,omitempty"`
}

// ColorEnabled reports whether banners should be styled.
func (c *Config) ColorEnabled() bool {
	return c == nil || c.Color == nil || *c.Color
}

// RunOptions derives driver options from the config.
func (c *Config) RunOptions() RunOptions {
	if c == nil {
		return RunOptions{}
	}
	return RunOptions{
		ShowTypes: c.ShowTypes,
		Parallel:  c.Parallel,
	}
}

// LoadConfig loads an imp.toml file from the given path.
func LoadConfig(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
	}
	for _, name := range config.Samples {
		if _, ok := LookupSample(name); !ok {
			return nil, fmt.Errorf("%s: unknown sample %q", path, name)
		}
	}
	return &config, nil
}

// FindConfig searches for an imp.toml file starting from dir and walking up
// to parent directories. Returns the path to imp.toml and the parsed config,
// or ("", nil, nil) if not found.
func FindConfig(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			config, err := LoadConfig(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}

		// Stop at .git boundary
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", nil, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

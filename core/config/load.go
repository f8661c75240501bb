package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/rushsh/rush/core/vos"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	return LoadFs(afero.NewBasePathFs(afero.NewOsFs(), path))
}

// LoadFs loads and validates the configuration stored at the root of
// configFs. Relative paths in the configuration resolve inside configFs.
func LoadFs(configFs afero.Fs) (*Configuration, error) {
	configContents, err := afero.ReadFile(configFs, ConfigurationName)
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", ConfigurationName, err)
	}
	out.configFs = configFs
	return &out, nil
}

// Initialize writes the default configuration to dir, unless one already
// exists, and loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	configFs := afero.NewBasePathFs(osFs, dir)

	switch _, err := configFs.Stat(ConfigurationName); {
	case err == nil:
		logger.Printf("Configuration already exists in %s, skipping\n", dir)
	case errors.Is(err, fs.ErrNotExist):
		if err := afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
		logger.Printf("Wrote %s\n", filepath.Join(dir, ConfigurationName))
	default:
		return nil, err
	}

	return LoadFs(configFs)
}

// LoadEnvFiles parses every configured dotenv file in order and sets the
// variables in dst. Later files override earlier ones.
func (c *Configuration) LoadEnvFiles(dst vos.VEnv) error {
	for _, name := range c.EnvFiles {
		vars, err := c.readEnvFile(name)
		if err != nil {
			return fmt.Errorf("loading env file %q: %w", name, err)
		}

		keys := make([]string, 0, len(vars))
		for k := range vars {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if err := dst.Setenv(k, vars[k]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Configuration) readEnvFile(name string) (map[string]string, error) {
	fd, err := c.fs().Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return godotenv.Parse(fd)
}

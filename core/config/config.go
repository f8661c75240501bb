package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/rushsh/rush/core/vos"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
)

type Configuration struct {
	configFs afero.Fs

	// Prompt is the prompt template, see core.ShellConfig.
	Prompt string `json:"prompt" validate:"required"`
	// Truncation is the initial working directory truncation, -1 disables it.
	Truncation int `json:"truncation" validate:"gte=-1"`
	// Home overrides $HOME.
	Home string `json:"home" validate:"omitempty,startswith=/"`

	AppLog   string `json:"app_log" validate:"required"`
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`

	// EnvFiles are dotenv files, relative to the configuration directory,
	// loaded into the shell's variables at startup.
	EnvFiles []string `json:"env_files" validate:"dive,required"`

	External External `json:"external"`

	Commands []Command `json:"commands" validate:"unique=Name,dive"`
}

// External configures how programs outside the shell are run.
type External struct {
	// PathLookup runs unknown commands found on $PATH.
	PathLookup bool `json:"path_lookup"`
	// HiddenPrefixes are variable prefixes never passed to children.
	HiddenPrefixes []string `json:"hidden_prefixes" validate:"dive,required"`
	// Allow, if set, are the only variables passed to children.
	Allow []string `json:"allow" validate:"unique"`
}

// Command registers a program under a fixed name.
type Command struct {
	Name    string   `json:"name" validate:"required"`
	Aliases []string `json:"aliases" validate:"unique,dive,required"`
	Path    string   `json:"path" validate:"required,startswith=/"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// EnvFilter returns the filter applied to the variables of child processes.
func (c *Configuration) EnvFilter() vos.EnvFilter {
	return vos.EnvFilter{
		HiddenPrefixes: c.External.HiddenPrefixes,
		Allow:          c.External.Allow,
	}
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.AppLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the application log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.AppLog, os.O_RDONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

package config

import (
	"fmt"
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

const (
	DefaultBranch         = "master"
	DefaultReleaseMessage = "deployed by gitship"
)

// Config is the immutable set of values a deployment run consumes. It
// is built once from the config file and flag overrides, validated, and
// threaded through every step; no step reads ambient process state.
type Config struct {
	AppName        string   `yaml:"app_name" validate:"required"`
	RepositoryURL  string   `yaml:"repository_url" validate:"required"`
	DeployTo       string   `yaml:"deploy_to"`
	Branch         string   `yaml:"branch"`
	Group          string   `yaml:"group"`
	ReleaseMessage string   `yaml:"release_message"`
	RestartCommand string   `yaml:"restart_command"`
	Hosts          []string `yaml:"hosts"`
	Username       string   `yaml:"username"`
	PrivateKeyPath string   `yaml:"private_key_path"`
	KnownHostsPath string   `yaml:"known_hosts_path"`
}

func Load(configPath string) (Config, error) {
	contents, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config file '%s'", configPath)
	}

	var conf Config
	if err := yaml.Unmarshal(contents, &conf); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config file '%s'", configPath)
	}

	return conf.WithDefaults(), nil
}

// WithDefaults fills the optional values that derive from the
// application name. It does not touch the required values; Validate
// rejects those when absent.
func (conf Config) WithDefaults() Config {
	if conf.DeployTo == "" && conf.AppName != "" {
		conf.DeployTo = path.Join("/var/www", conf.AppName)
	}
	if conf.Branch == "" {
		conf.Branch = DefaultBranch
	}
	if conf.Group == "" {
		conf.Group = conf.AppName
	}
	if conf.ReleaseMessage == "" {
		conf.ReleaseMessage = DefaultReleaseMessage
	}
	return conf
}

func (conf Config) Validate() error {
	err := validator.New().Struct(conf)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := []string{}
	for _, fieldError := range validationErrors {
		missing = append(missing, yamlName(fieldError.StructField()))
	}
	return errors.New(fmt.Sprintf("missing required configuration: %v", missing))
}

func yamlName(structField string) string {
	switch structField {
	case "AppName":
		return "app_name"
	case "RepositoryURL":
		return "repository_url"
	default:
		return structField
	}
}

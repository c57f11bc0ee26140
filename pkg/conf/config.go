package conf

import (
	"errors"
	"fmt"
	"os"

	"github.com/ferama/rospo-pipes/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Config holds all the config values
type Config struct {
	Web *WebClientConf `yaml:"web"`
}

// LoadConfig parses the [config].yaml file and loads its values
// into the Config struct
func LoadConfig(filePath string) (*Config, error) {
	path, err := utils.ExpandUserHome(filePath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error while reading config file: %w", err)
	}
	defer f.Close()

	var cfg Config

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error while parsing config file: %w", err)
	}

	if cfg.Web == nil {
		return nil, errors.New("you need to configure the web section")
	}
	cfg.Web.setDefaults()
	if err := cfg.Web.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

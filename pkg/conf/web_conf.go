package conf

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ferama/rospo-pipes/pkg/utils"
)

const (
	// DefaultAPI is where a locally started rospo exposes its web api
	DefaultAPI = "http://127.0.0.1:8090"
	// DefaultTimeout bounds a single api request
	DefaultTimeout = 10 * time.Second
)

// WebClientConf holds the rospo web api client configuration
type WebClientConf struct {
	// the web api address, like http://127.0.0.1:8090 or :8090
	API     string        `yaml:"api"`
	Timeout time.Duration `yaml:"timeout"`
	// if greater than zero the interactive view refreshes
	// itself with this period
	Refresh time.Duration `yaml:"refresh"`
}

// DefaultWebClientConf returns a conf pointing to the local rospo instance
func DefaultWebClientConf() *WebClientConf {
	c := &WebClientConf{}
	c.setDefaults()
	return c
}

func (c *WebClientConf) setDefaults() {
	if c.API == "" {
		c.API = DefaultAPI
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks the conf values
func (c *WebClientConf) Validate() error {
	if _, err := c.GetBaseURL(); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}
	if c.Refresh < 0 {
		return fmt.Errorf("invalid refresh period: %s", c.Refresh)
	}
	return nil
}

// GetBaseURL builds the web api base url from the API string
func (c *WebClientConf) GetBaseURL() (*url.URL, error) {
	return utils.ParseWebURL(c.API)
}

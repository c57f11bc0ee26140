package cmnflags

import (
	"fmt"
	"os"
	"strings"

	"github.com/ferama/rospo-pipes/pkg/autocomplete"
	"github.com/ferama/rospo-pipes/pkg/conf"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddWebClientFlags adds the web api client flags to FlagSet
func AddWebClientFlags(fs *pflag.FlagSet) {
	fs.StringP("api", "a", conf.DefaultAPI, "the rospo web api address")
	fs.StringP("config", "c", "", "optional config file path. Flags override its web section")
	fs.DurationP("timeout", "t", conf.DefaultTimeout, "the web api request timeout")
	fs.Duration("refresh", 0, "the interactive view refresh period. Zero disables it")
}

// AddOutputFlags adds the output selection flags to FlagSet
func AddOutputFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "table", "the output format: "+strings.Join(autocomplete.OutputFormats, ", "))
	fs.BoolP("interactive", "i", isatty.IsTerminal(os.Stdout.Fd()), "run the interactive view. Table output only")
}

// GetWebClientConf builds a WebClientConf object from cmd. Values
// explicitly set on the command line win over the config file ones
func GetWebClientConf(cmd *cobra.Command) (*conf.WebClientConf, error) {
	fs := cmd.Flags()

	c := conf.DefaultWebClientConf()
	if path, _ := fs.GetString("config"); path != "" {
		cfg, err := conf.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		c = cfg.Web
	}

	if fs.Changed("api") {
		c.API, _ = fs.GetString("api")
	}
	if fs.Changed("timeout") {
		c.Timeout, _ = fs.GetDuration("timeout")
	}
	if fs.Changed("refresh") {
		c.Refresh, _ = fs.GetDuration("refresh")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// IsInteractive tells if the interactive view should be started
func IsInteractive(cmd *cobra.Command) bool {
	output, _ := cmd.Flags().GetString("output")
	interactive, _ := cmd.Flags().GetBool("interactive")
	return interactive && output == "table"
}

// GetOutput returns the requested output format. Unknown formats and an
// explicit --interactive with a non table format are rejected
func GetOutput(cmd *cobra.Command) (string, error) {
	fs := cmd.Flags()
	output, _ := fs.GetString("output")

	valid := false
	for _, f := range autocomplete.OutputFormats {
		if f == output {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("unsupported output format %q. Use one of: %s",
			output, strings.Join(autocomplete.OutputFormats, ", "))
	}

	if interactive, _ := fs.GetBool("interactive"); interactive && fs.Changed("interactive") && output != "table" {
		return "", fmt.Errorf("the interactive view supports the table output only")
	}
	return output, nil
}

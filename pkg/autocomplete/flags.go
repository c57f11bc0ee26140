package autocomplete

import (
	"strings"

	"github.com/spf13/cobra"
)

// OutputFormats is the list of values the --output flag accepts
var OutputFormats = []string{"table", "json", "yaml"}

// Test with:
//
//	go build . && eval "$(./rospo-pipes completion zsh)"
//	./rospo-pipes pipes -o <tab> <tab>
func Output() func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var res []string
		for _, f := range OutputFormats {
			if strings.HasPrefix(f, toComplete) {
				res = append(res, f)
			}
		}
		return res, cobra.ShellCompDirectiveNoFileComp
	}
}

// ConfigFile completes yaml files only
func ConfigFile() func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
	}
}

package autocomplete

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"
)

func TestOutput(t *testing.T) {
	complete := Output()

	res, directive := complete(nil, nil, "")
	if !reflect.DeepEqual(res, OutputFormats) {
		t.Fatalf("got %v", res)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Fatalf("wrong directive: %d", directive)
	}

	res, _ = complete(nil, nil, "j")
	if !reflect.DeepEqual(res, []string{"json"}) {
		t.Fatalf("got %v", res)
	}
}

func TestConfigFile(t *testing.T) {
	res, directive := ConfigFile()(nil, nil, "")
	if directive != cobra.ShellCompDirectiveFilterFileExt || len(res) != 2 {
		t.Fatalf("got %v %d", res, directive)
	}
}

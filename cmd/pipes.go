package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/ferama/rospo-pipes/cmd/cmnflags"
	"github.com/ferama/rospo-pipes/pkg/autocomplete"
	"github.com/ferama/rospo-pipes/pkg/logger"
	"github.com/ferama/rospo-pipes/pkg/pipeview"
	"github.com/ferama/rospo-pipes/pkg/pipeview/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var pipesLog = logger.NewLogger("[PIPES] ", logger.Green)

func init() {
	rootCmd.AddCommand(pipesCmd)

	cmnflags.AddWebClientFlags(pipesCmd.Flags())
	cmnflags.AddOutputFlags(pipesCmd.Flags())

	pipesCmd.RegisterFlagCompletionFunc("output", autocomplete.Output())
	pipesCmd.RegisterFlagCompletionFunc("config", autocomplete.ConfigFile())
}

var pipesCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Lists the pipes of a rospo instance",
	Long: `Lists the pipes of a rospo instance sorted by id.

Examples:
  rospo-pipes pipes
  rospo-pipes pipes -a rpi.lan:8090 -o json
  rospo-pipes pipes -c ~/.rospo/pipes.yaml --refresh 5s`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, err := cmnflags.GetOutput(cmd)
		if err != nil {
			logger.Fatalln(pipesLog, err)
		}
		webConf, err := cmnflags.GetWebClientConf(cmd)
		if err != nil {
			logger.Fatalln(pipesLog, err)
		}

		fetcher, err := pipeview.NewFetcher(webConf, nil)
		if err != nil {
			logger.Fatalln(pipesLog, err)
		}
		view := pipeview.NewView(fetcher)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if cmnflags.IsInteractive(cmd) {
			// errors are reported in the status line
			logger.DisableLoggers()
			err := tui.Run(ctx, view, tui.Options{
				Source:  fetcher.URL(),
				Refresh: webConf.Refresh,
			})
			if err != nil {
				logger.Fatalln(pipesLog, err)
			}
			return
		}

		view.Mount(ctx)
		defer view.Close()
		if err := view.Wait(); err != nil {
			logger.Fatalln(pipesLog, err)
		}

		width := 0
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			width, _, _ = term.GetSize(fd)
		}
		if err := pipeview.Render(os.Stdout, output, view.Pipes(), width); err != nil {
			logger.Fatalln(pipesLog, err)
		}
	},
}

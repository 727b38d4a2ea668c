package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/pulse/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pulse: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "pulse",
		Short:         "Terminal CRM dashboard",
		Long:          "pulse shows contacts, tasks, the deal pipeline and live activity in a keyboard-driven dashboard.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to config.toml (default ~/.config/pulse/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "path to the preference store (default ~/.config/pulse/prefs.toml)")
	flags.StringVar(&opts.SeedPath, "seed", "", "path to a YAML seed file (default built-in sample data)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newRenderCmd(&opts))
	return root
}

func newRenderCmd(opts *app.Options) *cobra.Command {
	width, height := 120, 40

	cmd := &cobra.Command{
		Use:       "render <view>",
		Short:     "Print a single frame of a view and exit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"overview", "contacts", "tasks", "pipeline", "activity"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RenderFrame(cmd.OutOrStdout(), *opts, args[0], width, height)
		},
	}
	cmd.Flags().IntVar(&width, "width", width, "frame width in columns")
	cmd.Flags().IntVar(&height, "height", height, "frame height in rows")
	return cmd
}

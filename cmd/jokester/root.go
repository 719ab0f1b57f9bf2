package jokester

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/mistweaverco/jokester/internal/config"
	"github.com/mistweaverco/jokester/internal/joke"
	"github.com/mistweaverco/jokester/internal/lib/jokeapi"
	applog "github.com/mistweaverco/jokester/internal/lib/log"
	"github.com/mistweaverco/jokester/internal/lib/version"
	"github.com/mistweaverco/jokester/internal/ui"
	"github.com/spf13/cobra"
)

var cfg = config.NewConfig(config.Config{})

var rootCmd = &cobra.Command{
	Use:   "jokester",
	Short: "Jokester shows a random joke in your terminal",
	Long:  "Jokester fetches a random joke from the Official Joke API and shows it in a small TUI. Press enter for another one.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Flags.Version {
			fmt.Fprintln(cmd.OutOrStdout(), version.VERSION)
			return nil
		}

		flags, err := resolveFlags()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// The TUI owns the terminal, so diagnostics go to the log file.
		return uiShowFn(ctx, ui.Options{
			Fetcher: newFetcherFn(flags),
			Logger:  applog.NewLogger(logOutput),
			Color:   flags.Color,
		})
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Error("jokester failed", "err", err)
		osExit(1)
	}
}

// SetLogOutput routes TUI diagnostics, normally to the log file opened in main.
func SetLogOutput(w io.Writer) {
	logOutput = w
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.PersistentFlags().BoolVar(&cfg.Flags.Version, "version", false, "version")
	rootCmd.PersistentFlags().StringVar(&cfg.Flags.APIURL, "api-url", "", "joke API endpoint (default "+jokeapi.DefaultURL+")")
	rootCmd.PersistentFlags().DurationVar(&cfg.Flags.Timeout, "timeout", 0, "request timeout, 0 waits forever (e.g., 5s)")
	rootCmd.PersistentFlags().Var(&cfg.Flags.Color, "color", "color mode: auto, always, never")
	rootCmd.PersistentFlags().Var(&cfg.Flags.Output, "output", "output mode for get: rich, plain, json")
	SetColorConfigFunc(func() config.ConfigFlags { return resolvedFlags })
	timeoutChanged = func() bool { return rootCmd.PersistentFlags().Changed("timeout") }
}

// timeoutChanged reports whether --timeout was given; set in init to avoid
// an initialization cycle between rootCmd and resolveFlags.
var timeoutChanged func() bool

// resolvedFlags holds the effective configuration of the running command
var resolvedFlags = config.Defaults()

// resolveFlags layers the command line over env, config file and defaults.
func resolveFlags() (config.ConfigFlags, error) {
	set := cfg.Flags
	set.TimeoutSet = timeoutChanged()
	flags, err := resolveConfigFn(set)
	if err != nil {
		return flags, fmt.Errorf("failed to load configuration: %w", err)
	}
	resolvedFlags = flags
	return flags, nil
}

func newFetcher(flags config.ConfigFlags) joke.Fetcher {
	return jokeapi.NewClient(flags.APIURL, jokeapi.WithTimeout(flags.Timeout))
}

// osExit is a variable to allow overriding in tests
var osExit = os.Exit

var logOutput io.Writer = os.Stderr

// indirections for testability
var (
	uiShowFn        = ui.Show
	resolveConfigFn = config.Resolve
	newFetcherFn    = newFetcher
)

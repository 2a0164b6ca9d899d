package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/spf13/cobra"
)

// App is the taskctl command tree bound to one API client.
type App struct {
	cfg config.ClientConfig
	api adapter.TaskAPI

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

// NewApp builds the application. cfg supplies the defaults of the global
// flags; out receives command output and errOut receives logs and cobra
// usage messages.
func NewApp(cfg config.ClientConfig, out, errOut io.Writer) *App {
	return &App{
		cfg:    cfg,
		out:    out,
		errOut: errOut,
		logger: logger.Nop(),
	}
}

// Run parses args and executes the selected command.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "taskctl",
		Short:         "Command line client of the go-task-keeper API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.ServerURL, "server", a.cfg.ServerURL, "base URL of the API (env TASKCTL_SERVER)")
	flags.StringVar(&a.cfg.Token, "token", a.cfg.Token, "bearer token for task commands (env TASKCTL_TOKEN)")
	flags.DurationVar(&a.cfg.RequestTimeout, "timeout", a.cfg.RequestTimeout, "request timeout (env TASKCTL_TIMEOUT)")
	flags.BoolVarP(&a.cfg.Verbose, "verbose", "v", a.cfg.Verbose, "log requests to stderr (env TASKCTL_VERBOSE)")

	root.AddCommand(
		a.versionCommand(),
		a.registerCommand(),
		a.loginCommand(),
		a.tasksCommand(),
	)

	return root
}

// connect validates the merged flag values and creates the API client.
func (a *App) connect() error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = logger.NewClientLogger(a.errOut, "taskctl", a.cfg.Verbose)

	api, err := adapter.NewHTTPTaskAdapter(a.cfg, a.logger)
	if err != nil {
		return err
	}
	a.api = api

	a.logger.Debug().Str("server", a.cfg.ServerURL).Bool("token_set", a.cfg.Token != "").Msg("client configured")
	return nil
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := a.api.Version(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(map[string]string{"version": version})
		},
	}
}

// print writes v as indented JSON followed by a newline.
func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

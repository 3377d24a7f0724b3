package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/schematic/internal/app"
	"github.com/urfave/cli/v3"
)

const name = "schematic"

// overridden during build with ldflags
var version = "dev"

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

func failure(err error) error {
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Logging level: 'debug', 'info', 'warn' or 'error'.",
			Sources: cli.EnvVars("SCHEMATIC_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log output format: 'text' or 'json'.",
			Sources: cli.EnvVars("SCHEMATIC_LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:  "project",
			Usage: "Project to register the components in. Overrides the manifests.",
		},
	}
}

func manifestFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "Manifest file or directory. Repeatable; positional arguments are added too.",
	}
}

// NewCommand creates the root command. Results go to outW, logs and
// usage errors to errW.
func NewCommand(outW, errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:      name,
		Version:   version,
		Usage:     "Declare components in manifests and build them into a wired graph",
		Writer:    outW,
		ErrWriter: errW,
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			buildCmd(errW),
			validateCmd(errW),
			graphCmd(errW),
			strategiesCmd(errW),
		},
		// Exit codes are handled by the caller.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// Run parses args, which start with the program name, and runs the
// selected command.
func Run(ctx context.Context, args []string, outW, errW io.Writer) error {
	slog.Debug("CLI parser started.", "args", len(args))
	return NewCommand(outW, errW).Run(ctx, args)
}

// appConfig collects the manifest paths and global flags of cmd.
func appConfig(cmd *cli.Command, output string, metrics bool) (*app.Config, error) {
	paths := append([]string(nil), cmd.StringSlice("manifest")...)
	paths = append(paths, cmd.Args().Slice()...)
	if len(paths) == 0 {
		return nil, usageError("no manifest paths given: pass them as arguments or with --manifest")
	}

	cfg, err := app.NewConfig(app.Config{
		ManifestPaths: paths,
		Project:       cmd.String("project"),
		LogLevel:      strings.ToLower(cmd.String("log-level")),
		LogFormat:     strings.ToLower(cmd.String("log-format")),
		OutputFormat:  output,
		Metrics:       metrics,
	})
	if err != nil {
		return nil, usageError("%s", err.Error())
	}
	slog.Debug("CLI parser finished successfully.", "paths", paths)
	return cfg, nil
}

// loadApp is the shared prelude of every command.
func loadApp(cmd *cli.Command, errW io.Writer, output string, metrics bool) (*app.App, error) {
	cfg, err := appConfig(cmd, output, metrics)
	if err != nil {
		return nil, err
	}
	a, err := app.NewApp(cmd.Root().Writer, errW, cfg)
	if err != nil {
		return nil, failure(err)
	}
	return a, nil
}

// Package cli builds the command tree of the schematic binary on top of
// urfave/cli. It translates flags into an app.Config, runs the requested
// operation, and maps failures to process exit codes through ExitError.
//
// Commands:
//
//	schematic build      [-m PATH]... [--output yaml|json] [--metrics] [PATH]...
//	schematic validate   [-m PATH]... [PATH]...
//	schematic graph      [-m PATH]... [PATH]...
//	schematic strategies [-m PATH]... [PATH]...
//
// Global flags --log-level, --log-format and --project apply to every
// command. Logs are written to the error writer, results to the output
// writer.
package cli

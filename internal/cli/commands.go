package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

func buildCmd(errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build every component and print the built values",
		ArgsUsage: "[PATH]...",
		Description: `Load the manifests, build every declared component in dependency order
and print the values keyed by category.name.

Examples:
  schematic build ./pipeline
  schematic build -m base.hcl -m overrides.yaml --output json
  schematic build ./pipeline --metrics`,
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "yaml",
				Usage:   "Output format: 'yaml' or 'json'.",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Print build metrics in the Prometheus text format after the values.",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := loadApp(cmd, errW, cmd.String("output"), cmd.Bool("metrics"))
			if err != nil {
				return err
			}
			if err := a.Run(ctx); err != nil {
				return failure(err)
			}
			return nil
		},
	}
}

func validateCmd(errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check references, links and cycles without building",
		ArgsUsage: "[PATH]...",
		Flags:     []cli.Flag{manifestFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := loadApp(cmd, errW, "", false)
			if err != nil {
				return err
			}
			if err := a.Validate(ctx); err != nil {
				return failure(err)
			}
			_, err = fmt.Fprintf(cmd.Root().Writer, "OK: %d components in project %q\n",
				a.Registry().Len(), a.Facade().CurrentProject())
			return err
		},
	}
}

func graphCmd(errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "graph",
		Usage:     "Print the build order with the dependencies of each component",
		ArgsUsage: "[PATH]...",
		Flags:     []cli.Flag{manifestFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := loadApp(cmd, errW, "", false)
			if err != nil {
				return err
			}
			order, err := a.BuildOrder(ctx)
			if err != nil {
				return failure(err)
			}
			deps := make(map[string][]string, len(order))
			for _, c := range a.Registry().Categories() {
				decls, err := a.Registry().Components(c)
				if err != nil {
					continue
				}
				for _, d := range decls {
					deps[d.Ref().String()] = d.Dependencies
				}
			}

			w := cmd.Root().Writer
			for _, key := range order {
				if len(deps[key]) == 0 {
					if _, err := fmt.Fprintln(w, key); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(w, "%s <- %v\n", key, deps[key]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func strategiesCmd(errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "strategies",
		Usage:     "List the registered strategies per category",
		ArgsUsage: "[PATH]...",
		Flags:     []cli.Flag{manifestFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := loadApp(cmd, errW, "", false)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tSTRATEGY\tOUTPUT")
			for _, s := range a.Strategies() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Category, s.Name, s.OutputType)
			}
			return tw.Flush()
		},
	}
}

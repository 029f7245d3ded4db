package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/giuseppe/syscontainer-build/core"
	"github.com/giuseppe/syscontainer-build/engine"
)

var GenerateFilesCommand = &cli.Command{
	Name:                  "generate-files",
	Usage:                 "generate manifest.json, config.json.template, and service.template",
	ArgsUsage:             "OUTPUT",
	EnableShellCompletion: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "description",
			Aliases: []string{"d"},
			Usage:   "description of the container",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "options to pass to the OCI config generator. Example: -c \"--cwd=/tmp --os=linux\"",
		},
		&cli.StringSliceFlag{
			Name:    "default",
			Aliases: []string{"D"},
			Usage:   "default manifest values in the form of key=value",
		},
		&cli.StringSliceFlag{
			Name:  "defaults-file",
			Usage: "JSON, TOML, or YAML file of default manifest values, applied before -D",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		output := cmd.Args().First()
		if output == "" {
			return cli.Exit("output directory argument is required", 1)
		}

		opts := &core.GenerateFilesOptions{
			Description:   cmd.String("description"),
			Overrides:     cmd.StringSlice("default"),
			DefaultsFiles: cmd.StringSlice("defaults-file"),
			ConfigArgs:    cmd.String("config"),
		}

		result, err := core.GenerateFiles(engine.New(), output, opts)
		if err != nil {
			return cli.Exit(err, 1)
		}

		core.PrettyPrintGenerateResult(result, core.PrintOptions{Version: Version})

		return nil
	},
}

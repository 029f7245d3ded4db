package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/giuseppe/syscontainer-build/core"
	"github.com/giuseppe/syscontainer-build/core/app"
)

var GenerateDockerfileCommand = &cli.Command{
	Name:                  "generate-dockerfile",
	Usage:                 "generate a new Dockerfile for a system container image",
	ArgsUsage:             "NAME",
	EnableShellCompletion: true,
	Flags:                 generateDockerfileFlags(),
	Action: func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.Args().First()
		if name == "" {
			return cli.Exit("image name argument is required", 1)
		}

		values := map[string]string{"name": name}
		for _, flag := range dockerfileFlags {
			if value := cmd.String(flag.Name); value != "" {
				values[flag.Param] = value
			}
		}

		path, err := core.GenerateDockerfile(cmd.String("output"), values, app.FromOS())
		if err != nil {
			return cli.Exit(err, 1)
		}

		log.Infof("Dockerfile written to %s", path)

		return nil
	},
}

func generateDockerfileFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   ".",
			Usage:   "path to write the new Dockerfile",
		},
	}

	for _, flag := range dockerfileFlags {
		flags = append(flags, &cli.StringFlag{
			Name:    flag.Name,
			Aliases: flag.Aliases,
			Usage:   flag.Usage,
		})
	}

	return flags
}

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/giuseppe/syscontainer-build/core/app"
	"github.com/giuseppe/syscontainer-build/engine"
)

var BuildCommand = &cli.Command{
	Name:                  "build",
	Usage:                 "build a new system container image with the container engine",
	ArgsUsage:             "TAG",
	EnableShellCompletion: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Value:   ".",
			Usage:   "path to the Dockerfile directory",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		tag := cmd.Args().First()
		if tag == "" {
			return cli.Exit("tag argument is required", 1)
		}

		buildContext, err := app.NewApp(cmd.String("path"))
		if err != nil {
			return cli.Exit(err, 1)
		}

		if !buildContext.HasMatch("Dockerfile") {
			return cli.Exit(fmt.Errorf("no Dockerfile found in %s", buildContext.Source), 1)
		}

		if err := engine.New().BuildImage(buildContext.Source, tag); err != nil {
			return cli.Exit(err, 1)
		}

		log.Infof("Built %s from %s", tag, buildContext.Source)

		return nil
	},
}

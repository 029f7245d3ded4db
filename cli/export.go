package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/giuseppe/syscontainer-build/engine"
)

var ExportTarCommand = &cli.Command{
	Name:                  "export-tar",
	Aliases:               []string{"tar"},
	Usage:                 "export an image as a tar file",
	ArgsUsage:             "IMAGE",
	EnableShellCompletion: true,
	Action: func(ctx context.Context, cmd *cli.Command) error {
		image := cmd.Args().First()
		if image == "" {
			return cli.Exit("image argument is required", 1)
		}

		tarPath, err := engine.New().ExportImage(image)
		if err != nil {
			return cli.Exit(err, 1)
		}

		log.Infof("Image exported to %s", tarPath)

		return nil
	},
}

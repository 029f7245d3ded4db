package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	urfave "github.com/urfave/cli/v3"

	"github.com/giuseppe/syscontainer-build/cli"
)

var verbose bool

func main() {

	logger := log.Default()
	logger.SetTimeFormat("")
	urfaveLogWriter := logger.StandardLog(log.StandardLogOptions{
		ForceLevel: log.ErrorLevel,
	}).Writer()
	urfave.ErrWriter = urfaveLogWriter

	cmd := &urfave.Command{
		Name:                  "syscontainer-build",
		Usage:                 "Scaffold and build system container image artifacts",
		EnableShellCompletion: true,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Enable verbose logging",
				Value:       false,
				Destination: &verbose,
			},
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			configureLogging(verbose)

			return ctx, nil
		},
		Commands: []*urfave.Command{
			cli.GenerateFilesCommand,
			cli.GenerateDockerfileCommand,
			cli.BuildCommand,
			cli.ExportTarCommand,
			cli.SchemaCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func configureLogging(verbose bool) {
	log.SetTimeFormat("")

	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

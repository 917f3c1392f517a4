package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/gitship/gitship/cli/command"
)

var version string

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "gitship"
	app.Usage = "Release application code by tagging commits in place on the target hosts"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Path to the deployment config file",
		},
		cli.StringSliceFlag{
			Name:  "host",
			Usage: "Target host (overrides the hosts in the config file; repeatable)",
		},
		cli.BoolFlag{
			Name:  "parallel",
			Usage: "Run hosts in parallel instead of one after another",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}

	app.Commands = []cli.Command{
		command.NewSetupCommand().Cli(),
		command.NewDeployCommand().Cli(),
		command.NewRollbackCommand().Cli(),
		{
			Name:  "version",
			Usage: "",
			Action: func(c *cli.Context) error {
				cli.ShowVersion(c)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

package command

import (
	"github.com/urfave/cli"

	"github.com/gitship/gitship/deployer"
)

type SetupCommand struct {
}

func NewSetupCommand() SetupCommand {
	return SetupCommand{}
}

func (s SetupCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "setup",
		Aliases: []string{"s"},
		Usage:   "Prepare the hosts: clone the repository and fix ownership",
		Before:  requireConfigFlag,
		Action:  s.Action,
	}
}

func (s SetupCommand) Action(c *cli.Context) error {
	return runOnAllHosts(c, func(d deployer.Deployer) deployer.Task {
		return d.Setup
	})
}

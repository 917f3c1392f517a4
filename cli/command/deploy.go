package command

import (
	"github.com/urfave/cli"

	"github.com/gitship/gitship/deployer"
)

type DeployCommand struct {
}

func NewDeployCommand() DeployCommand {
	return DeployCommand{}
}

func (d DeployCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "deploy",
		Aliases: []string{"d"},
		Usage:   "Ship the tip of the configured branch and tag the release",
		Before:  requireConfigFlag,
		Action:  d.Action,
	}
}

func (d DeployCommand) Action(c *cli.Context) error {
	return runOnAllHosts(c, func(dep deployer.Deployer) deployer.Task {
		return dep.Deploy
	})
}

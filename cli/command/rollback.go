package command

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gitship/gitship/deployer"
)

type RollbackCommand struct {
}

func NewRollbackCommand() RollbackCommand {
	return RollbackCommand{}
}

func (r RollbackCommand) Cli() cli.Command {
	return cli.Command{
		Name:   "rollback",
		Usage:  "Revert the hosts to the previous release",
		Before: requireConfigFlag,
		Action: r.Action,
		Flags: []cli.Flag{cli.BoolFlag{
			Name:  "yes",
			Usage: "Skip the confirmation prompt",
		}},
	}
}

func (r RollbackCommand) Action(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return redCliError(err)
	}

	if !c.Bool("yes") {
		if !confirm(fmt.Sprintf("Roll back '%s' on %d host(s)?", conf.AppName, len(conf.Hosts))) {
			return nil
		}
	}

	return runOnAllHosts(c, func(d deployer.Deployer) deployer.Task {
		return d.Rollback
	})
}

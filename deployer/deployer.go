package deployer

import (
	"time"

	"github.com/gitship/gitship/config"
	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/release"
	"github.com/gitship/gitship/ssh"
)

// Deployer runs the composite release tasks against a single host. It
// holds no mutable state of its own, so one Deployer per host can run
// concurrently with others.
type Deployer struct {
	repository ssh.RemoteRepository
	logger     orchestrator.Logger
	now        func() time.Time
}

func NewDeployer(repository ssh.RemoteRepository, logger orchestrator.Logger, now func() time.Time) Deployer {
	return Deployer{
		repository: repository,
		logger:     logger,
		now:        now,
	}
}

// Setup prepares a host for its first deployment: it creates the deploy
// path, clones the repository into it and fixes group ownership.
func (d Deployer) Setup(conf config.Config) orchestrator.Error {
	if errs := validate(conf); errs != nil {
		return errs
	}

	transaction := orchestrator.NewTransaction(d.logger,
		NewCloneCodeStep(d.repository),
		NewChangeOwnershipStep(d.repository),
	)

	return transaction.Run(orchestrator.NewSession(conf))
}

// Deploy ships the tip of the configured branch and marks the release
// with a timestamp tag. On commit the configured restart command runs
// on the host; it never runs when the transaction rolled back.
func (d Deployer) Deploy(conf config.Config) orchestrator.Error {
	if errs := validate(conf); errs != nil {
		return errs
	}

	session := orchestrator.NewSession(conf)

	// Snapshot the latest tag before anything mutates the repository;
	// the update_code compensator resets to this value.
	latest, found, err := d.resolver(conf).Latest()
	if err != nil {
		return orchestrator.NewError(err)
	}
	if found {
		session.SetStartingTag(latest)
	}

	transaction := orchestrator.NewTransaction(d.logger,
		NewUpdateCodeStep(d.repository),
		NewChangeOwnershipStep(d.repository),
		NewTagStep(d.repository, d.now),
	)

	if errs := transaction.Run(session); errs != nil {
		return errs
	}

	d.logger.Info("deploy", "Released '%s' as %s", conf.AppName, session.CreatedTag())
	return d.restart(conf)
}

// Rollback is not a transaction; it is a compensating operation run on
// demand. With no release tags it is a no-op.
func (d Deployer) Rollback(conf config.Config) orchestrator.Error {
	if errs := validate(conf); errs != nil {
		return errs
	}

	resolver := d.resolver(conf)

	latest, found, err := resolver.Latest()
	if err != nil {
		return orchestrator.NewError(err)
	}
	if !found {
		d.logger.Info("rollback", "No release to roll back for '%s'", conf.AppName)
		return nil
	}

	d.logger.Info("rollback", "Deleting release tag %s", latest)
	if err := d.repository.DeleteTag(conf.DeployTo, latest); err != nil {
		return orchestrator.NewError(orchestrator.NewRemoteCommandError(err.Error()))
	}

	previous, found, err := resolver.LatestExcluding(latest)
	if err != nil {
		return orchestrator.NewError(err)
	}
	if !found {
		d.logger.Info("rollback", "No previous release for '%s'", conf.AppName)
		return nil
	}

	d.logger.Info("rollback", "Resetting working tree to %s", previous)
	if err := d.repository.HardResetToRevision(conf.DeployTo, previous); err != nil {
		return orchestrator.NewError(orchestrator.NewRemoteCommandError(err.Error()))
	}

	return nil
}

func (d Deployer) resolver(conf config.Config) release.Resolver {
	return release.NewResolver(release.TagListerFunc(func() ([]string, error) {
		return d.repository.ReleaseTags(conf.DeployTo)
	}))
}

func (d Deployer) restart(conf config.Config) orchestrator.Error {
	if conf.RestartCommand == "" {
		return nil
	}

	d.logger.Info("deploy", "Restarting '%s'", conf.AppName)
	if _, err := d.repository.RunCommand(conf.RestartCommand); err != nil {
		return orchestrator.NewError(orchestrator.NewRemoteCommandError(err.Error()))
	}
	return nil
}

func validate(conf config.Config) orchestrator.Error {
	if err := conf.Validate(); err != nil {
		return orchestrator.NewError(orchestrator.NewConfigError(err.Error()))
	}
	return nil
}

package deployer

import (
	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/ssh"
)

// NewUpdateCodeStep fetches from the remote and hard-resets the working
// tree to the tip of the configured branch. Its compensator resets back
// to the release tag snapshotted before the transaction started; when
// no release existed there is nothing to reset to.
func NewUpdateCodeStep(repository ssh.RemoteRepository) orchestrator.Step {
	return orchestrator.NewStep("update_code", func(session *orchestrator.Session) error {
		conf := session.Config()
		if err := repository.Fetch(conf.DeployTo); err != nil {
			return err
		}
		return repository.HardResetToRevision(conf.DeployTo, "origin/"+conf.Branch)
	}).WithCompensator(func(session *orchestrator.Session) error {
		startingTag, ok := session.StartingTag()
		if !ok {
			return nil
		}
		return repository.HardResetToRevision(session.Config().DeployTo, startingTag)
	})
}

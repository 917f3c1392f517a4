package deployer

import (
	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/ssh"
)

// NewCloneCodeStep creates the deploy path and clones the repository
// into it. Its compensator removes the deploy path entirely.
func NewCloneCodeStep(repository ssh.RemoteRepository) orchestrator.Step {
	return orchestrator.NewStep("clone_code", func(session *orchestrator.Session) error {
		conf := session.Config()
		if err := repository.CreateDirectory(conf.DeployTo); err != nil {
			return err
		}
		return repository.CloneRepository(conf.RepositoryURL, conf.DeployTo)
	}).WithCompensator(func(session *orchestrator.Session) error {
		return repository.RemoveDirectory(session.Config().DeployTo)
	})
}

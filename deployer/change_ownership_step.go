package deployer

import (
	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/ssh"
)

// NewChangeOwnershipStep hands the deploy path to the application
// group. It has no compensator: the change is idempotent and harmless
// to leave applied.
func NewChangeOwnershipStep(repository ssh.RemoteRepository) orchestrator.Step {
	return orchestrator.NewStep("change_ownership", func(session *orchestrator.Session) error {
		conf := session.Config()
		return repository.ChangeGroupOwnership(conf.DeployTo, conf.Group)
	})
}

package deployer

import (
	"time"

	"github.com/gitship/gitship/orchestrator"
	"github.com/gitship/gitship/release"
	"github.com/gitship/gitship/ssh"
)

// NewTagStep marks the deployed commit with a fresh timestamp tag and
// records the tag on the session. Its compensator deletes that exact
// tag.
func NewTagStep(repository ssh.RemoteRepository, now func() time.Time) orchestrator.Step {
	return orchestrator.NewStep("tag", func(session *orchestrator.Session) error {
		conf := session.Config()
		tag := release.NewTimestampTag(now)
		if err := repository.CreateTag(conf.DeployTo, tag, conf.ReleaseMessage); err != nil {
			return err
		}
		session.SetCreatedTag(tag)
		return nil
	}).WithCompensator(func(session *orchestrator.Session) error {
		return repository.DeleteTag(session.Config().DeployTo, session.CreatedTag())
	})
}

package orchestrator

import "github.com/gitship/gitship/config"

// Session carries the per-run state of a single transaction on a single
// host: the immutable configuration plus the tag values recorded while
// the transaction runs. It is discarded when the run finishes.
type Session struct {
	config         config.Config
	startingTag    string
	hasStartingTag bool
	createdTag     string
}

func NewSession(conf config.Config) *Session {
	return &Session{config: conf}
}

func (session *Session) Config() config.Config {
	return session.config
}

// SetStartingTag snapshots the latest release tag as it was before the
// transaction mutated the repository. Compensators reset to this value
// rather than re-resolving tags mid-rollback.
func (session *Session) SetStartingTag(tag string) {
	session.startingTag = tag
	session.hasStartingTag = true
}

func (session *Session) StartingTag() (string, bool) {
	return session.startingTag, session.hasStartingTag
}

func (session *Session) SetCreatedTag(tag string) {
	session.createdTag = tag
}

func (session *Session) CreatedTag() string {
	return session.createdTag
}

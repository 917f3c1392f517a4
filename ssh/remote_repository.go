package ssh

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

//counterfeiter:generate -o fakes/fake_remote_repository.go . RemoteRepository
type RemoteRepository interface {
	ConnectedUsername() string
	CreateDirectory(path string) error
	RemoveDirectory(path string) error
	CloneRepository(repositoryURL, path string) error
	Fetch(path string) error
	HardResetToRevision(path, revision string) error
	CreateTag(path, tag, message string) error
	DeleteTag(path, tag string) error
	ReleaseTags(path string) ([]string, error)
	ChangeGroupOwnership(path, group string) error
	RunCommand(cmd string) (string, error)
}

// GitRemoteRepository drives the version-controlled repository on a
// target host through an SSH connection. A non-zero exit status becomes
// an error carrying the trimmed stderr and the exit code.
type GitRemoteRepository struct {
	logger     Logger
	connection SSHConnection
}

func NewGitRemoteRepository(connection SSHConnection, logger Logger) GitRemoteRepository {
	return GitRemoteRepository{
		connection: connection,
		logger:     logger,
	}
}

func (r GitRemoteRepository) ConnectedUsername() string {
	return r.connection.Username()
}

func (r GitRemoteRepository) CreateDirectory(path string) error {
	_, err := r.runOnHost(fmt.Sprintf("mkdir -p %s", path))
	return err
}

func (r GitRemoteRepository) RemoveDirectory(path string) error {
	_, err := r.runOnHost(fmt.Sprintf("rm -rf %s", path))
	return err
}

func (r GitRemoteRepository) CloneRepository(repositoryURL, path string) error {
	_, err := r.runOnHost(fmt.Sprintf("git clone %s %s", repositoryURL, path))
	return err
}

func (r GitRemoteRepository) Fetch(path string) error {
	_, err := r.runInRepository(path, "git fetch origin")
	return err
}

func (r GitRemoteRepository) HardResetToRevision(path, revision string) error {
	_, err := r.runInRepository(path, fmt.Sprintf("git reset --hard %s", revision))
	return err
}

func (r GitRemoteRepository) CreateTag(path, tag, message string) error {
	_, err := r.runInRepository(path, fmt.Sprintf("git tag %s -m '%s'", tag, message))
	return err
}

func (r GitRemoteRepository) DeleteTag(path, tag string) error {
	_, err := r.runInRepository(path, fmt.Sprintf("git tag -d %s", tag))
	return err
}

func (r GitRemoteRepository) ReleaseTags(path string) ([]string, error) {
	stdout, err := r.runInRepository(path, "git tag --list")
	if err != nil {
		return nil, err
	}

	output := strings.TrimSpace(stdout)
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

func (r GitRemoteRepository) ChangeGroupOwnership(path, group string) error {
	_, err := r.runOnHost(fmt.Sprintf("chgrp -R %s %s && chmod -R g+rwX %s", group, path, path))
	return err
}

func (r GitRemoteRepository) RunCommand(cmd string) (string, error) {
	return r.runOnHost(cmd)
}

func (r GitRemoteRepository) runInRepository(path, cmd string) (string, error) {
	return r.runOnHost(fmt.Sprintf("cd %s && %s", path, cmd))
}

func (r GitRemoteRepository) runOnHost(cmd string) (string, error) {
	stdout, stderr, exitCode, runErr := r.connection.Run(cmd)

	r.logger.Debug("gitship", "stdout: %s", string(stdout))
	r.logger.Debug("gitship", "stderr: %s", string(stderr))

	if runErr != nil {
		return "", runErr
	}

	if exitCode != 0 {
		return "", exitError(stderr, exitCode)
	}

	return string(stdout), nil
}

func exitError(stderr []byte, exitCode int) error {
	return errors.New(fmt.Sprintf("%s - exit code %d", strings.TrimSpace(string(stderr)), exitCode))
}
